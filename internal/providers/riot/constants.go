package riot

import "time"

const (
	providerName = "riot"

	// routePlaceholder in the base URL is replaced with a platform or regional host label.
	routePlaceholder   = "{route}"
	defaultBaseURL     = "https://" + routePlaceholder + ".api.riotgames.com"
	tokenHeader        = "X-Riot-Token"
	defaultHTTPTimeout = 30 * time.Second

	defaultLookupTimeout   = 10 * time.Second
	defaultTimelineTimeout = 20 * time.Second
	defaultRetryAfter      = time.Second
	maxErrorBody           = 512

	accountByRiotIDPath = "/riot/account/v1/accounts/by-riot-id/%s/%s"
	summonerByNamePath  = "/lol/summoner/v4/summoners/by-name/%s"
	matchIDsPath        = "/lol/match/v5/matches/by-puuid/%s/ids"
	matchPath           = "/lol/match/v5/matches/%s"
	timelinePath        = "/lol/match/v5/matches/%s/timeline"
)
