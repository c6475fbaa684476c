package tidal

import "fmt"

// Quality is an audio quality tier. Tiers form a total order,
// Normal < High < HiFi < Master, so they can be compared directly with
// < and >= when negotiating streams.
type Quality int

const (
	Normal Quality = iota
	High
	HiFi
	Master
)

// Wire strings are fixed by the service.
const (
	wireNormal = "LOW"
	wireHigh   = "HIGH"
	wireHiFi   = "LOSSLESS"
	wireMaster = "HI_RES"
)

// ParseQuality maps a wire quality string to its tier.
func ParseQuality(s string) (Quality, error) {
	switch s {
	case wireNormal:
		return Normal, nil
	case wireHigh:
		return High, nil
	case wireHiFi:
		return HiFi, nil
	case wireMaster:
		return Master, nil
	}
	return 0, fmt.Errorf("tidal: unknown audio quality %q", s)
}

// Wire returns the string the service uses for this tier.
func (q Quality) Wire() string {
	switch q {
	case Normal:
		return wireNormal
	case High:
		return wireHigh
	case HiFi:
		return wireHiFi
	case Master:
		return wireMaster
	}
	return fmt.Sprintf("Quality(%d)", int(q))
}

func (q Quality) String() string {
	switch q {
	case Normal:
		return "Normal"
	case High:
		return "High"
	case HiFi:
		return "HiFi"
	case Master:
		return "Master"
	}
	return fmt.Sprintf("Quality(%d)", int(q))
}

// Mode is a playback audio mode label. The server-side set of modes is
// open, so unknown values are carried as-is rather than rejected.
type Mode struct {
	raw string
}

// ModeStereo is the only mode the service is known to return today.
var ModeStereo = Mode{raw: "STEREO"}

// ParseMode never fails: a value outside the known set still round-trips
// through Wire.
func ParseMode(s string) Mode {
	return Mode{raw: s}
}

// Known reports whether the mode is one this package recognizes.
func (m Mode) Known() bool {
	return m == ModeStereo
}

// Wire returns the raw mode string as the service sent it.
func (m Mode) Wire() string { return m.raw }

func (m Mode) String() string {
	if m == ModeStereo {
		return "Stereo"
	}
	return m.raw
}
