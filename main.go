package main

import (
	"context"
	"database/sql"
	"time"

	"github.com/heroiclabs/nakama-common/runtime"

	"stridequest/questlogix"
)

// noinspection GoUnusedExportedFunction
func InitModule(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, initializer runtime.Initializer) error {
	initStart := time.Now()

	logger.Info("Loading Stridequest Nakama plugin...")

	// Empty config file paths select the compiled-in default catalogs.
	_, err := questlogix.Init(ctx, logger, nk, initializer,
		questlogix.NewSystemConfig(questlogix.SystemTypeObjectives, ""),
		questlogix.NewSystemConfig(questlogix.SystemTypeInventory, ""),
	)
	if err != nil {
		logger.Error("Failed to initialize Questlogix systems: %v", err)
		return err
	}

	logger.Info("Stridequest Nakama plugin loaded in '%d' msec.", time.Now().Sub(initStart).Milliseconds())
	return nil
}

// main is never called: Nakama loads this module via InitModule. It exists so
// the package links as a regular binary when built without -buildmode=plugin.
func main() {}
