package entity

import "slices"

// AlertConfig is the process-wide notification configuration. Updates replace
// the whole value; readers always see a consistent snapshot.
type AlertConfig struct {
	Enabled            bool     `json:"enabled"`
	Recipients         []string `json:"recipients"` // Ordered, no duplicates.
	SendPOAlerts       bool     `json:"sendPOAlerts"`
	SendLowStockAlerts bool     `json:"sendLowStockAlerts"`
}

// Clone returns a deep copy so holders can hand out snapshots without
// sharing the recipients slice.
func (c AlertConfig) Clone() AlertConfig {
	cloned := c
	cloned.Recipients = slices.Clone(c.Recipients)

	return cloned
}
