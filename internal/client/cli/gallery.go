package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/chenjq/photofolio/internal/client/models"
)

// List prints the held collection, fetching the first page if nothing is
// loaded yet.
func (a *App) List(ctx context.Context) error {
	if len(a.gallery.Images()) == 0 && a.gallery.HasMore() {
		if err := a.gallery.FetchNextPage(ctx); err != nil {
			printlnFn("Fetch failed: " + err.Error())
			return err
		}
	}
	a.printImages()
	return nil
}

// More loads the next page, if the listing has not terminated.
func (a *App) More(ctx context.Context) error {
	if !a.gallery.HasMore() {
		printlnFn("No more images")
		return nil
	}
	if err := a.gallery.FetchNextPage(ctx); err != nil {
		printlnFn("Fetch failed: " + err.Error())
		return err
	}
	a.printImages()
	return nil
}

// Refresh starts the listing over from the first page.
func (a *App) Refresh(ctx context.Context) error {
	a.gallery.Reset()
	return a.List(ctx)
}

func (a *App) Delete(ctx context.Context, args []string) error {
	if len(args) == 0 {
		printlnFn("Usage: delete <image-id>")
		return nil
	}
	if err := a.gallery.DeleteOne(ctx, args[0]); err != nil {
		printlnFn("Delete failed: " + err.Error())
		return err
	}
	printlnFn("Deleted " + args[0])
	return nil
}

// Edit prompts for metadata fields one by one; skipped fields are left out of
// the patch entirely so the server only touches what was entered.
func (a *App) Edit(ctx context.Context, args []string) error {
	if len(args) == 0 {
		printlnFn("Usage: edit <image-id>")
		return nil
	}
	imageID := args[0]

	patch := models.MetadataPatch{}
	for _, f := range []struct{ key, prompt string }{
		{"title", "Title"},
		{"description", "Description"},
		{"location", "Location"},
	} {
		v, ok, err := GetOptionalText(a.reader, f.prompt, os.Stdout)
		if err != nil {
			return err
		}
		if ok {
			patch[f.key] = v
		}
	}
	if len(patch) == 0 {
		printlnFn("Nothing to update")
		return nil
	}

	if err := a.gallery.UpdateOne(ctx, imageID, patch); err != nil {
		printlnFn("Update failed: " + err.Error())
		return err
	}
	printlnFn("Updated " + imageID)
	return nil
}

func (a *App) printImages() {
	images := a.gallery.Images()
	if len(images) == 0 {
		printlnFn("No images")
		return
	}
	for _, img := range images {
		line := fmt.Sprintf("%s  %s", img.ImageID, img.FileName)
		if img.Title != "" {
			line += "  " + img.Title
		}
		printlnFn(line)
	}
	if a.gallery.HasMore() {
		printlnFn("(type 'more' for the next page)")
	}
}
