//go:build ignore

// Prints what the system clipboard holds. Run with: go run ./cmd/cliptest
package main

import (
	"fmt"

	"github.com/zhubert/pixclip/internal/clipboard"
)

func main() {
	board, err := clipboard.System()
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}
	clip := clipboard.New(board)

	fmt.Println("Testing clipboard read...")
	img, err := clip.ReadImage()
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}
	if img == nil {
		fmt.Println("No image in clipboard")
		if text := clip.ReadText(); text != "" {
			fmt.Printf("Text: %q\n", text)
		}
		return
	}
	fmt.Printf("Image found: %dx%d %s from %s, %d KB\n", img.Width, img.Height, img.Format.Name, img.Source, img.SizeKB())
}
