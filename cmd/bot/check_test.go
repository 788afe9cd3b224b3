package main

import (
	"bytes"
	"testing"

	"github.com/KirkDiggler/starwatch/internal/models"
	"github.com/KirkDiggler/starwatch/internal/platform"
	"github.com/KirkDiggler/starwatch/internal/services/monitor"
	"github.com/stretchr/testify/assert"
)

func TestPrintStreamer(t *testing.T) {
	streamer := &models.Streamer{
		UID: 7,
		Targets: []*models.Target{{
			ID:         "100",
			LiveReport: models.ReportOptions{Enabled: true, Danmu: true},
		}},
	}
	info := &platform.StatusInfo{UID: 7, Name: "alice", RoomID: 1234, Status: models.LiveStatusLive}

	var buf bytes.Buffer
	printStreamer(&buf, streamer, info, monitor.Settings{OnlyHandleNecessaryEvents: true})

	out := buf.String()
	assert.Contains(t, out, "7 alice room=1234")
	assert.Contains(t, out, "DANMU_MSG")
	assert.NotContains(t, out, "SEND_GIFT")
	assert.NotContains(t, out, "DYNAMIC_UPDATE")
}

func TestPrintStreamerWithoutRoom(t *testing.T) {
	var buf bytes.Buffer
	printStreamer(&buf, &models.Streamer{UID: 8}, nil, monitor.Settings{})

	assert.Contains(t, buf.String(), "status=unknown")
	assert.Contains(t, buf.String(), "no live room")
}

func TestPrintStreamerUnnecessaryRoom(t *testing.T) {
	var buf bytes.Buffer
	printStreamer(&buf, &models.Streamer{UID: 9, RoomID: 99}, nil, monitor.Settings{OnlyConnectNecessaryRooms: true})

	assert.Contains(t, buf.String(), "will not connect")
}
