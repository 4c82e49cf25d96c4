package view

// FlashKind doubles as the CSS modifier of the notice banner.
type FlashKind string

const (
	FlashInfo    FlashKind = "info"
	FlashSuccess FlashKind = "success"
	FlashWarning FlashKind = "warning"
	FlashError   FlashKind = "error"
)

func (k FlashKind) Valid() bool {
	switch k {
	case FlashInfo, FlashSuccess, FlashWarning, FlashError:
		return true
	}
	return false
}

// Flash is a one-shot notice shown on the page after a form redirect.
type Flash struct {
	Kind    FlashKind `json:"kind"`
	Message string    `json:"message"`
}

// Role is the ARIA role of the banner: errors interrupt, the rest do not.
func (f Flash) Role() string {
	if f.Kind == FlashError {
		return "alert"
	}
	return "status"
}
