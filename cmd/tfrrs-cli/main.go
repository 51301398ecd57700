package main

import (
	"context"
	"os"

	"tfrrs-backend/cmd/tfrrs-cli/commands"
	"tfrrs-backend/lib/serviceutil"
	"tfrrs-backend/lib/telemetry"
)

func main() {
	ctx := context.Background()

	telemetry.InitSlog(true)
	tel, err := telemetry.SetupFromEnv(ctx, "tfrrs-cli")
	if err != nil && !os.IsNotExist(err) {
		serviceutil.Fatal("failed to setup telemetry", err)
	}
	defer tel.Shutdown(context.Background())

	commands.ExecuteContext(ctx)
}
