package version

// Version is the service version surfaced on /health and the CLI.
const Version = "1.0.0"
