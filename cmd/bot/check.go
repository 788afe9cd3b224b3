package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/KirkDiggler/starwatch/internal/config"
	"github.com/KirkDiggler/starwatch/internal/models"
	"github.com/KirkDiggler/starwatch/internal/platform"
	"github.com/KirkDiggler/starwatch/internal/services/monitor"
	"github.com/spf13/cobra"
)

func newCheckCmd(load func() (*config.Config, error)) *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "Print each configured broadcaster and the events its room would handle",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := load()
			if err != nil {
				return err
			}

			client, err := newPlatform(cfg)
			if err != nil {
				return err
			}

			streamers := cfg.Streamers()
			uids := make([]int64, len(streamers))
			for i, s := range streamers {
				uids[i] = s.UID
			}

			infos, err := client.GetStatusInfoByUIDs(cmd.Context(), uids)
			if err != nil {
				return fmt.Errorf("failed to get status info: %w", err)
			}

			settings := monitor.Settings{
				OnlyConnectNecessaryRooms: cfg.Monitor.OnlyConnectNecessaryRoom,
				OnlyHandleNecessaryEvents: cfg.Monitor.OnlyHandleNecessaryEvent,
			}
			for _, s := range streamers {
				printStreamer(cmd.OutOrStdout(), s, infos[s.UID], settings)
			}
			return nil
		},
	}
}

func printStreamer(w io.Writer, s *models.Streamer, info *platform.StatusInfo, settings monitor.Settings) {
	status := "unknown"
	if info != nil {
		if s.Name == "" {
			s.Name = info.Name
		}
		if s.RoomID == 0 {
			s.RoomID = info.RoomID
		}
		status = info.Status.String()
	}

	fmt.Fprintf(w, "%d %s room=%d status=%s targets=%d\n", s.UID, s.Name, s.RoomID, status, len(s.Targets))

	switch {
	case s.RoomID == 0:
		fmt.Fprintln(w, "  no live room, will be skipped")
		return
	case settings.OnlyConnectNecessaryRooms && !monitor.Necessary(s):
		fmt.Fprintln(w, "  nothing enabled, will not connect")
		return
	}

	kinds := monitor.HandledEvents(s, settings)
	names := make([]string, len(kinds))
	for i, k := range kinds {
		names[i] = k.String()
	}
	fmt.Fprintf(w, "  handles %s\n", strings.Join(names, ", "))
}
