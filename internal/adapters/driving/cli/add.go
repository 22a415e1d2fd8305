package cli

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/lumenboard/lumen-cli/internal/core/domain"
)

var (
	addBody     string
	addURL      string
	addTags     []string
	addCategory string
	addPriority string
	addDue      string
)

var addCmd = &cobra.Command{
	Use:   "add",
	Short: "Add content to the dashboard",
}

var addNoteCmd = &cobra.Command{
	Use:   "note [title]",
	Short: "Add a note",
	Args:  cobra.ExactArgs(1),
	RunE:  runAddNote,
}

var addLinkCmd = &cobra.Command{
	Use:   "link [title]",
	Short: "Add a link",
	Args:  cobra.ExactArgs(1),
	RunE:  runAddLink,
}

var addVideoCmd = &cobra.Command{
	Use:   "video [title]",
	Short: "Add a video",
	Args:  cobra.ExactArgs(1),
	RunE:  runAddVideo,
}

var addImageCmd = &cobra.Command{
	Use:   "image [title]",
	Short: "Add an image",
	Args:  cobra.ExactArgs(1),
	RunE:  runAddImage,
}

var addTodoCmd = &cobra.Command{
	Use:   "todo [title]",
	Short: "Add a todo",
	Args:  cobra.ExactArgs(1),
	RunE:  runAddTodo,
}

func init() {
	for _, c := range []*cobra.Command{addNoteCmd, addLinkCmd, addVideoCmd, addImageCmd, addTodoCmd} {
		c.Flags().StringVarP(&addBody, "body", "b", "", "content or description")
		c.Flags().StringArrayVar(&addTags, "tag", nil, "tag (repeatable)")
		addCmd.AddCommand(c)
	}
	for _, c := range []*cobra.Command{addLinkCmd, addVideoCmd, addImageCmd} {
		c.Flags().StringVarP(&addURL, "url", "u", "", "address of the item")
	}
	addTodoCmd.Flags().StringVarP(&addCategory, "category", "c", "", "user-assigned category")
	addTodoCmd.Flags().StringVarP(&addPriority, "priority", "p", string(domain.PriorityMedium), "priority (high, medium, low)")
	addTodoCmd.Flags().StringVar(&addDue, "due", "", "due date (YYYY-MM-DD)")
	rootCmd.AddCommand(addCmd)
}

func runAddNote(cmd *cobra.Command, args []string) error {
	if contentStore == nil {
		return errors.New("content store not configured")
	}
	note := &domain.Note{
		ID:        uuid.NewString(),
		Title:     args[0],
		Content:   addBody,
		Tags:      addTags,
		CreatedAt: time.Now().UTC(),
	}
	if err := contentStore.SaveNote(cmd.Context(), note); err != nil {
		return fmt.Errorf("saving note: %w", err)
	}
	cmd.Printf("Added note %s\n", note.ID)
	return nil
}

func runAddLink(cmd *cobra.Command, args []string) error {
	if contentStore == nil {
		return errors.New("content store not configured")
	}
	link := &domain.Link{
		ID:          uuid.NewString(),
		Title:       args[0],
		Description: addBody,
		URL:         addURL,
		Tags:        addTags,
		CreatedAt:   time.Now().UTC(),
	}
	if err := contentStore.SaveLink(cmd.Context(), link); err != nil {
		return fmt.Errorf("saving link: %w", err)
	}
	cmd.Printf("Added link %s\n", link.ID)
	return nil
}

func runAddVideo(cmd *cobra.Command, args []string) error {
	if contentStore == nil {
		return errors.New("content store not configured")
	}
	video := &domain.Video{
		ID:          uuid.NewString(),
		Title:       args[0],
		Description: addBody,
		URL:         addURL,
		Tags:        addTags,
		CreatedAt:   time.Now().UTC(),
	}
	if err := contentStore.SaveVideo(cmd.Context(), video); err != nil {
		return fmt.Errorf("saving video: %w", err)
	}
	cmd.Printf("Added video %s\n", video.ID)
	return nil
}

func runAddImage(cmd *cobra.Command, args []string) error {
	if contentStore == nil {
		return errors.New("content store not configured")
	}
	image := &domain.Image{
		ID:          uuid.NewString(),
		Title:       args[0],
		Description: addBody,
		URL:         addURL,
		Tags:        addTags,
		CreatedAt:   time.Now().UTC(),
	}
	if err := contentStore.SaveImage(cmd.Context(), image); err != nil {
		return fmt.Errorf("saving image: %w", err)
	}
	cmd.Printf("Added image %s\n", image.ID)
	return nil
}

func runAddTodo(cmd *cobra.Command, args []string) error {
	if contentStore == nil {
		return errors.New("content store not configured")
	}
	todo := &domain.Todo{
		ID:          uuid.NewString(),
		Title:       args[0],
		Description: addBody,
		Category:    addCategory,
		Tags:        addTags,
		Priority:    domain.Priority(addPriority),
		CreatedAt:   time.Now().UTC(),
	}
	if addDue != "" {
		due, err := time.Parse("2006-01-02", addDue)
		if err != nil {
			return fmt.Errorf("invalid --due date %q: %w", addDue, err)
		}
		todo.DueDate = &due
	}
	if err := contentStore.SaveTodo(cmd.Context(), todo); err != nil {
		return fmt.Errorf("saving todo: %w", err)
	}
	cmd.Printf("Added todo %s\n", todo.ID)
	return nil
}
