package domain

import (
	"fmt"
	"regexp"
	"strconv"
)

// Take is a take number. Only the rendering is padded; the value itself is
// unbounded, so tk99 is followed by tk100.
type Take int

const DefaultTake Take = 1

var (
	reTakeInput    = regexp.MustCompile(`(?i)(?:tk)?(\d{1,2})`)
	reTakeFilename = regexp.MustCompile(`(?i)tk(\d{2})`)
)

func (t Take) String() string {
	return fmt.Sprintf("tk%02d", int(t))
}

func (t Take) Next() Take {
	return t + 1
}

// NormalizeTake parses operator input such as "tk3", "TK07" or "5". Input
// without a usable number yields DefaultTake.
func NormalizeTake(raw string) Take {
	m := reTakeInput.FindStringSubmatch(raw)
	if m == nil {
		return DefaultTake
	}
	n, err := strconv.Atoi(m[1])
	if err != nil {
		return DefaultTake
	}
	return Take(n)
}

// TakeFromFilename looks for an embedded tkNN token in an attached source's
// name. The token marks the previous take, so the returned take is the one
// after it.
func TakeFromFilename(name string) (Take, bool) {
	m := reTakeFilename.FindStringSubmatch(name)
	if m == nil {
		return 0, false
	}
	n, err := strconv.Atoi(m[1])
	if err != nil {
		return 0, false
	}
	return Take(n).Next(), true
}
