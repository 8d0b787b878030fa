package cli

import (
	"github.com/rshade/jobfocus/internal/config"
	"github.com/rshade/jobfocus/internal/credentials"
	"github.com/rshade/jobfocus/internal/jobs"
	"github.com/rshade/jobfocus/pkg/version"
)

// credentialStore returns the store named by the global config.
func credentialStore() *credentials.Store {
	return credentials.NewStore(config.GetCredentialsFile())
}

// newJobsClient builds an API client from the global config. The token is
// read on every request so auth changes apply without a restart.
func newJobsClient() *jobs.Client {
	cfg := config.GetGlobalConfig()

	ua := cfg.API.UserAgent
	if ua == "" {
		v, _ := version.Normalize(version.GetVersion())
		ua = "jobfocus/" + v
	}

	return jobs.NewClient(
		cfg.API.BaseURL,
		credentials.NewTokenSource(credentialStore()),
		jobs.WithTimeout(cfg.API.Timeout),
		jobs.WithUserAgent(ua),
	)
}
