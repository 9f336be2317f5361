package cli

import (
	"context"
	"fmt"
	"os"
)

// Upload collects file paths until an empty line, then uploads the batch
// sequentially and reports the outcome per file.
func (a *App) Upload(ctx context.Context) error {
	for {
		path, ok, err := GetOptionalText(a.reader, "File to upload", os.Stdout)
		if err != nil {
			return err
		}
		if !ok {
			break
		}
		if _, err := a.uploads.Add(path); err != nil {
			printlnFn("Skipped " + path + ": " + err.Error())
		}
	}

	items := a.uploads.Items()
	if len(items) == 0 {
		printlnFn("Nothing to upload")
		return nil
	}

	uploaded, failed := a.uploads.UploadPending(ctx)
	for _, it := range a.uploads.Items() {
		status := string(it.Status)
		if it.Err != nil {
			status += " (" + it.Err.Error() + ")"
		}
		printlnFn(fmt.Sprintf("%s: %s", it.FileName, status))
	}
	printlnFn(fmt.Sprintf("Uploaded %d, failed %d", uploaded, failed))
	a.uploads.Clear()
	return nil
}
