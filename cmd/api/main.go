package main

import (
	"context"

	"github.com/saradorri/gameplatform/internal/app"
)

// @title Game Platform API Service
// @version 1.0
// @description Real-money multiplayer gaming platform: wallet ledger, game lifecycle, Yahtzee and chess engines, tournaments and settlement.

// @host localhost:8080
// @BasePath /api/v1

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.
func main() {
	ctx := context.Background()
	application := app.NewApplication(ctx)
	application.Setup()
}
