package embedded

// Release is set to "true" on tagged release builds via ldflags.
var Release = "false"
