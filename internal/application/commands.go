package application

import "github.com/bnema/chatline/internal/domain"

type RegisterCommand struct {
	Username string
	Password string
}

func (c RegisterCommand) Credentials() domain.Credentials {
	return domain.Credentials{Username: c.Username, Password: c.Password}
}

type LoginCommand struct {
	Username string
	Password string
}

func (c LoginCommand) Credentials() domain.Credentials {
	return domain.Credentials{Username: c.Username, Password: c.Password}
}
