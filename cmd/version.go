package cmd

// version is set at build time via ldflags:
//
//	go build -ldflags "-X osprofile/cmd.version=v0.1.0"
var version = "dev"

func init() {
	rootCmd.Version = version
}
