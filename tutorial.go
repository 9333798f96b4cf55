package gltut

// Tutorial is a single interactive program driven by the framework.
//
// All methods run on the thread that owns the GL context. Init is called
// once after the context is current; Release is always called afterwards,
// even when Init fails part way, so implementations must tolerate releasing
// a partially initialized state.
type Tutorial interface {
	Init() error
	Reshape(width, height int)
	Display()
	HandleMouse(e MouseEvent)
	HandleKey(e KeyEvent)
	Release()
}

// StatusReporter is implemented by tutorials that show status lines in the HUD.
type StatusReporter interface {
	Status() []string
}
