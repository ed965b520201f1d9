package version

// AppVersion is the released version, overridable with -ldflags.
var AppVersion = "0.1.0"
