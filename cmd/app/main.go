package main

import (
	"github.com/indicai/core/internal/app"
	"github.com/indicai/core/internal/config"
)

func main() {
	app.Go(config.Load())
}
