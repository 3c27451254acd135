package tui

// NoticeExpiredMsg clears the notice shown by the save with the same Seq.
// Notices replaced in the meantime are left alone.
type NoticeExpiredMsg struct {
	Seq int
}
