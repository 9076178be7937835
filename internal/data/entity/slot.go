package entity

type SlotStatus string

const (
	SlotStatusAvailable   SlotStatus = "available"
	SlotStatusBooked      SlotStatus = "booked"
	SlotStatusUnavailable SlotStatus = "unavailable"
)

// timeLabels is the fixed hourly vocabulary covering operating hours 6:00-22:00.
var timeLabels = []string{
	"6:00 AM", "7:00 AM", "8:00 AM", "9:00 AM", "10:00 AM", "11:00 AM",
	"12:00 PM", "1:00 PM", "2:00 PM", "3:00 PM", "4:00 PM", "5:00 PM",
	"6:00 PM", "7:00 PM", "8:00 PM", "9:00 PM", "10:00 PM",
}

// TimeLabels returns the slot vocabulary in display order.
func TimeLabels() []string {
	labels := make([]string, len(timeLabels))
	copy(labels, timeLabels)
	return labels
}

func IsValidTimeLabel(label string) bool {
	for _, l := range timeLabels {
		if l == label {
			return true
		}
	}
	return false
}

// SlotView is one cell of the day grid a caller renders for slot selection.
type SlotView struct {
	Time   string     `json:"time"`
	Status SlotStatus `json:"status"`
}
