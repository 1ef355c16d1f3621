package internal

// Version is the doctrans release version
const Version = "0.3.0"
