package cli

import (
	"context"

	"github.com/dmitrijs2005/postview/internal/client/services"
)

// List prints the post list, loading it on first use.
func (a *App) List(ctx context.Context) error {
	a.println(a.styles().muted.Render("Loading posts..."))
	a.printPosts(a.posts.List(ctx))
	return nil
}

// Refresh reloads the post list from the API.
func (a *App) Refresh(ctx context.Context) error {
	a.println(a.styles().muted.Render("Loading posts..."))
	a.printPosts(a.posts.Refetch(ctx))
	return nil
}

// Show prints one post.
func (a *App) Show(ctx context.Context, id int) error {
	s := a.styles()
	a.println(s.muted.Render("Loading post details..."))

	st := a.posts.Detail(ctx, id)
	if st.Post != nil {
		a.println(renderPost(s, *st.Post))
	}
	if st.Error != "" {
		a.println(renderError(s, st.Error))
		a.println(s.muted.Render("Type 'show <id>' again to retry"))
	}
	return nil
}

func (a *App) printPosts(st services.PostsState) {
	s := a.styles()
	if st.Posts != nil {
		a.println(renderPostList(s, st.Posts))
	}
	if st.Error != "" {
		a.println(renderError(s, st.Error))
		a.println(s.muted.Render("Type 'refresh' to retry"))
	}
}
