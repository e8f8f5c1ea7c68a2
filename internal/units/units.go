package units

import "fmt"

// System selects the unit system for one evaluation pass. Every calculator
// invoked during the same pass must receive the same value.
type System string

const (
	SI System = "SI"
	IP System = "IP"
)

// Normalize maps the accepted spellings onto a System. An empty string
// defaults to SI, matching the form default. "I-P" is the AHRI spelling
// and is accepted alongside "IP".
func Normalize(s System) (System, error) {
	switch s {
	case "", SI, "si":
		return SI, nil
	case IP, "I-P", "ip", "i-p":
		return IP, nil
	default:
		return "", fmt.Errorf("unknown unit system %q", string(s))
	}
}
