package handlers

import (
	"net/http"
	"testing"

	"github.com/rentory/rentory-api/internal/dto"
	"github.com/rentory/rentory-api/internal/models"
	"github.com/stretchr/testify/require"
)

func TestNotificationHandler_Broadcast_AllProperties(t *testing.T) {
	env := setupTestEnv(t)
	owner := env.createOwner(t, "900000001")
	env.createProperty(t, owner.ID, 2, 12000)
	env.createProperty(t, owner.ID, 4, 25000)

	payload := map[string]interface{}{
		"owner_id": owner.ID,
		"title":    "Water maintenance",
		"body":     "Supply off on Sunday 10:00-14:00",
	}

	w := env.doJSON(t, http.MethodPost, "/notifications/broadcast", payload)
	require.Equal(t, http.StatusAccepted, w.Code)

	var response dto.BroadcastResponseDTO
	decodeJSON(t, w, &response)
	require.True(t, response.Queued)
	require.Len(t, response.NotificationIDs, 2)

	var stored int64
	require.NoError(t, env.db.Model(&models.Notification{}).Where("owner_id = ?", owner.ID).Count(&stored).Error)
	require.Equal(t, int64(2), stored)
}

func TestNotificationHandler_Broadcast_ExplicitTargets(t *testing.T) {
	env := setupTestEnv(t)
	owner := env.createOwner(t, "900000001")
	target := env.createProperty(t, owner.ID, 2, 12000)
	env.createProperty(t, owner.ID, 4, 25000)

	payload := map[string]interface{}{
		"owner_id":     owner.ID,
		"title":        "Rent due",
		"body":         "Please pay by the 5th",
		"property_ids": []string{target.ID},
	}

	w := env.doJSON(t, http.MethodPost, "/notifications/broadcast", payload)
	require.Equal(t, http.StatusAccepted, w.Code)

	var response dto.BroadcastResponseDTO
	decodeJSON(t, w, &response)
	require.Len(t, response.NotificationIDs, 1)

	var notification models.Notification
	require.NoError(t, env.db.First(&notification, "id = ?", response.NotificationIDs[0]).Error)
	require.NotNil(t, notification.PropertyID)
	require.Equal(t, target.ID, *notification.PropertyID)
}

func TestNotificationHandler_Broadcast_NoProperties(t *testing.T) {
	env := setupTestEnv(t)
	owner := env.createOwner(t, "900000001")

	payload := map[string]interface{}{
		"owner_id": owner.ID,
		"title":    "Hello",
		"body":     "Nobody will see this",
	}

	w := env.doJSON(t, http.MethodPost, "/notifications/broadcast", payload)
	require.Equal(t, http.StatusAccepted, w.Code)

	var response dto.BroadcastResponseDTO
	decodeJSON(t, w, &response)
	require.True(t, response.Queued)
	require.Empty(t, response.NotificationIDs)
}

func TestNotificationHandler_Broadcast_UnknownOwner(t *testing.T) {
	env := setupTestEnv(t)

	payload := map[string]interface{}{
		"owner_id": "no-such-owner",
		"title":    "Hello",
		"body":     "World",
	}

	w := env.doJSON(t, http.MethodPost, "/notifications/broadcast", payload)
	require.Equal(t, http.StatusNotFound, w.Code)
}
