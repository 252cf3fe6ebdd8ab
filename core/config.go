// Package core holds the toolkit-wide configuration and the time
// services driving render loops.
package core

// Configuration defines a global toolkit configuration setting
type Configuration struct {
	Time    TimeConfiguration
	Display DisplayConfiguration
}

// TimeConfiguration is used to configure time services
type TimeConfiguration struct {
	// FramesPerSecond caps frames per second that is put out
	// To unlimit, set to 0
	FramesPerSecond int
}

// DisplayConfiguration is used to configure the window and renderer
type DisplayConfiguration struct {
	Title string

	ScreenWidth  uint32
	ScreenHeight uint32

	// VSync synchronises presentation to the display refresh rate
	VSync bool
}
