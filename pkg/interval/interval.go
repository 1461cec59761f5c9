package interval

import (
	"fmt"
	"time"
)

// Interval represents a candle aggregation window.
type Interval struct {
	Name     string
	Duration time.Duration
}

// Supported intervals configuration.
var (
	Interval1m  = Interval{Name: "1m", Duration: time.Minute}
	Interval3m  = Interval{Name: "3m", Duration: 3 * time.Minute}
	Interval5m  = Interval{Name: "5m", Duration: 5 * time.Minute}
	Interval15m = Interval{Name: "15m", Duration: 15 * time.Minute}
	Interval30m = Interval{Name: "30m", Duration: 30 * time.Minute}
	Interval1h  = Interval{Name: "1h", Duration: time.Hour}
	Interval2h  = Interval{Name: "2h", Duration: 2 * time.Hour}
	Interval4h  = Interval{Name: "4h", Duration: 4 * time.Hour}
	Interval6h  = Interval{Name: "6h", Duration: 6 * time.Hour}
	Interval12h = Interval{Name: "12h", Duration: 12 * time.Hour}
	Interval1d  = Interval{Name: "1d", Duration: 24 * time.Hour}
	Interval3d  = Interval{Name: "3d", Duration: 3 * 24 * time.Hour}
	Interval1w  = Interval{Name: "1w", Duration: 7 * 24 * time.Hour}
)

// AllIntervals lists every interval a trade is folded into.
var AllIntervals = []Interval{
	Interval1m, Interval3m, Interval5m, Interval15m, Interval30m,
	Interval1h, Interval2h, Interval4h, Interval6h, Interval12h,
	Interval1d, Interval3d, Interval1w,
}

// Interval registry for lookup.
var intervalRegistry = make(map[string]Interval)

func init() {
	for _, interval := range AllIntervals {
		intervalRegistry[interval.Name] = interval
	}
}

// Get returns an interval by name.
func Get(name string) (Interval, error) {
	interval, exists := intervalRegistry[name]
	if !exists {
		return Interval{}, fmt.Errorf("unsupported interval: %s", name)
	}
	return interval, nil
}

// IsValid checks if interval name is supported.
func IsValid(name string) bool {
	_, exists := intervalRegistry[name]
	return exists
}

// Names returns all supported interval names.
func Names() []string {
	names := make([]string, 0, len(AllIntervals))
	for _, interval := range AllIntervals {
		names = append(names, interval.Name)
	}
	return names
}
