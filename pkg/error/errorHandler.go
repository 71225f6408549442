package error

import (
	"movie_review/configs"

	"github.com/getsentry/sentry-go"
	"github.com/rs/zerolog/log"
)

func SaveError(message string, err error) {
	if configs.GetConfigs().PrintErrors {
		log.Error().Err(err).Msg(message)
	}

	if err == nil {
		sentry.CaptureMessage(message)
	} else {
		sentry.CaptureException(err)
	}
}
