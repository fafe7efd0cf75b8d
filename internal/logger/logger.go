package logger

import (
	"go.uber.org/zap"

	"github.com/culinarybook/backend/config"
)

// New builds the application logger. Production gets sampled JSON
// output; everything else gets the human-readable console encoder.
func New() (*zap.SugaredLogger, error) {
	var zapCfg zap.Config
	if config.IsProduction() {
		zapCfg = zap.NewProductionConfig()
	} else {
		zapCfg = zap.NewDevelopmentConfig()
	}

	log, err := zapCfg.Build()
	if err != nil {
		return nil, err
	}
	return log.Sugar(), nil
}

// NewNop returns a logger that discards everything. Used by tests.
func NewNop() *zap.SugaredLogger {
	return zap.NewNop().Sugar()
}
