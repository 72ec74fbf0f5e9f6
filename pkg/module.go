package pkg

import (
	"go.uber.org/fx"

	"farmstand/pkg/config"
	"farmstand/pkg/filemanager"
	"farmstand/pkg/logger"
	"farmstand/pkg/redis"
	"farmstand/pkg/reply"
	"farmstand/pkg/upstream"
)

var Module = fx.Options(
	config.Module,
	logger.Module,
	reply.Module,
	redis.Module,
	upstream.Module,
	filemanager.Module,
)
