package monitor

import (
	"context"
	"fmt"

	"github.com/KirkDiggler/starwatch/internal/models"
	roomRepo "github.com/KirkDiggler/starwatch/internal/repositories/room"
	statsRepo "github.com/KirkDiggler/starwatch/internal/repositories/stats"
	"github.com/rs/zerolog/log"
)

// Bootstrap syncs every room's persisted status with the platform before any
// feed connects. It fills in names and rooms, and clears counters left over
// from a session that ended while the process was down.
func Bootstrap(ctx context.Context, input *BootstrapInput) error {
	if input == nil || input.Platform == nil || input.RoomRepo == nil || input.StatsRepo == nil {
		return ErrNilInput
	}

	if len(input.Streamers) == 0 {
		return nil
	}

	byUID := make(map[int64]*models.Streamer, len(input.Streamers))
	uids := make([]int64, 0, len(input.Streamers))
	for _, s := range input.Streamers {
		byUID[s.UID] = s
		uids = append(uids, s.UID)
	}

	infos, err := input.Platform.GetStatusInfoByUIDs(ctx, uids)
	if err != nil {
		return fmt.Errorf("failed to get status info: %w", err)
	}

	for _, uid := range uids {
		info, ok := infos[uid]
		if !ok || info.RoomID == 0 {
			// Connect reports broadcasters without a room
			continue
		}

		streamer := byUID[uid]
		streamer.Name = info.Name
		streamer.RoomID = info.RoomID

		log.Info().
			Int64("uid", uid).
			Int64("room_id", info.RoomID).
			Str("uname", info.Name).
			Stringer("status", info.Status).
			Msg("Initial room status")

		if info.Status == models.LiveStatusLive {
			lastStart, err := input.RoomRepo.GetStartTime(ctx, &roomRepo.GetTimeInput{RoomID: info.RoomID})
			if err != nil {
				return fmt.Errorf("failed to get start time of room %d: %w", info.RoomID, err)
			}

			if lastStart != info.StartTime {
				err = input.StatsRepo.ArchiveAndReset(ctx, &statsRepo.ArchiveAndResetInput{RoomID: info.RoomID})
				if err != nil {
					return fmt.Errorf("failed to reset room %d: %w", info.RoomID, err)
				}
			}
		}

		err = input.RoomRepo.SetStatus(ctx, &roomRepo.SetStatusInput{RoomID: info.RoomID, Status: info.Status})
		if err != nil {
			return fmt.Errorf("failed to set status of room %d: %w", info.RoomID, err)
		}

		err = input.RoomRepo.SetStartTime(ctx, &roomRepo.SetTimeInput{RoomID: info.RoomID, Timestamp: info.StartTime})
		if err != nil {
			return fmt.Errorf("failed to set start time of room %d: %w", info.RoomID, err)
		}
	}

	return nil
}
