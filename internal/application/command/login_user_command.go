package command

import "branding-agent/internal/application/common"

type LoginUserCommand struct {
	Email    string
	Password string
}

type LoginUserCommandResult struct {
	Token  string
	Result *common.UserResult
}
