package cli

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/thenoetrevino/crewdesk/internal/models"
)

// Confirm asks a yes/no question on out and reads the answer from in.
// Anything but y or yes is a no.
func Confirm(in io.Reader, out io.Writer, prompt string) bool {
	fmt.Fprintf(out, "%s (y/N): ", prompt)
	answer, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && answer == "" {
		return false
	}
	answer = strings.ToLower(strings.TrimSpace(answer))
	return answer == "y" || answer == "yes"
}

// Deref renders an optional string, nil becomes "-"
func Deref(s *string) string {
	if s == nil || *s == "" {
		return "-"
	}
	return *s
}

// FormatDate renders a calendar date, the zero date becomes "-"
func FormatDate(d models.Date) string {
	if d.IsZero() {
		return "-"
	}
	return d.String()
}

// FormatTime renders an optional timestamp in local time
func FormatTime(t *time.Time) string {
	if t == nil || t.IsZero() {
		return "-"
	}
	return t.Local().Format("2006-01-02 15:04")
}

// FormatHours renders a duration in hours without trailing zeros
func FormatHours(h float64) string {
	return strconv.FormatFloat(h, 'f', -1, 64) + "h"
}

// YesNo renders a boolean flag column
func YesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}
