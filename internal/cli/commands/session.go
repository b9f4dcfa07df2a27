package commands

import (
	"ResumeBuilder/internal/cli/api"
	fsrepo "ResumeBuilder/internal/cli/repo/fs"
	"ResumeBuilder/internal/cli/service"
	"ResumeBuilder/internal/config"
)

func authService(cfg *config.Config) *service.DevAuthService {
	return service.NewDevAuthService(fsrepo.NewAuthFSStore(cfg.TokenFile), cfg.AuthSecret)
}

// openClient собирает HTTP-клиент с сохранённым токеном.
func openClient(cfg *config.Config) (*api.Client, error) {
	token, err := authService(cfg).Token()
	if err != nil {
		return nil, err
	}
	return api.NewClient(cfg.ServerURL, token), nil
}
