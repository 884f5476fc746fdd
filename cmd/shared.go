package cmd

import "github.com/schollz/progressbar/v3"

func newBar(total int64, description string) *progressbar.ProgressBar {
	if quiet {
		return progressbar.DefaultSilent(total, description)
	}
	return progressbar.Default(total, description)
}
