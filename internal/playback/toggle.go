package playback

// Transport is the control surface Toggle works on.
type Transport interface {
	IsPlaying() bool
	IsStopped() bool
	Pause()
	Resume()
	Play() error
}

// Toggle pauses a playing transport, restarts a stopped one and resumes a
// paused one.
func Toggle(t Transport) error {
	switch {
	case t.IsPlaying():
		t.Pause()
	case t.IsStopped():
		return t.Play()
	default:
		t.Resume()
	}
	return nil
}
