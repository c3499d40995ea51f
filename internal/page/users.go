package page

import (
	"context"
	"log/slog"
)

type Users struct {
	source UserSource
	view   UsersView
	log    *slog.Logger
}

func NewUsers(source UserSource, view UsersView, log *slog.Logger) *Users {
	return &Users{source: source, view: view, log: loggerOr(log)}
}

// Load fetches the users and renders one card per user.
func (p *Users) Load(ctx context.Context) error {
	p.view.Loading(LoadingUsers)

	users, err := p.source.Users(ctx)
	if err != nil {
		p.log.WarnContext(ctx, "load users failed", "err", err)
		p.view.Failed(FailedUsers, err, nil)
		return err
	}
	p.log.DebugContext(ctx, "users loaded", "count", len(users))
	p.view.ShowUsers(users)
	return nil
}
