package easytest

// Version is the release of the module and the easytest command.
const Version = "0.1.0"
