package store

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/abhisek/studiq/ent"
	"github.com/abhisek/studiq/ent/profile"
)

// profileRepo implements ProfileRepo using the ent client.
type profileRepo struct {
	client *ent.Client
}

func (r *profileRepo) Get(ctx context.Context, userID string) (*ProfileData, error) {
	p, err := r.client.Profile.Query().
		Where(profile.UserID(userID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("query profile %s: %w", userID, err)
	}
	return entProfileToData(p)
}

func (r *profileRepo) Put(ctx context.Context, data *ProfileData) error {
	dataMap, err := profileDataToMap(data)
	if err != nil {
		return fmt.Errorf("marshal profile data: %w", err)
	}

	existing, err := r.client.Profile.Query().
		Where(profile.UserID(data.UserID)).
		Only(ctx)
	if err != nil {
		if !ent.IsNotFound(err) {
			return fmt.Errorf("query profile %s: %w", data.UserID, err)
		}
		_, err = r.client.Profile.Create().
			SetUserID(data.UserID).
			SetData(dataMap).
			Save(ctx)
		if err != nil {
			return fmt.Errorf("create profile %s: %w", data.UserID, err)
		}
		return nil
	}

	_, err = existing.Update().
		SetData(dataMap).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("update profile %s: %w", data.UserID, err)
	}
	return nil
}

// profileDataToMap converts ProfileData to map[string]any for ent JSON storage.
func profileDataToMap(data *ProfileData) (map[string]any, error) {
	b, err := json.Marshal(data)
	if err != nil {
		return nil, err
	}
	var m map[string]any
	if err := json.Unmarshal(b, &m); err != nil {
		return nil, err
	}
	return m, nil
}

// entProfileToData converts an ent Profile row to ProfileData.
func entProfileToData(p *ent.Profile) (*ProfileData, error) {
	b, err := json.Marshal(p.Data)
	if err != nil {
		return nil, fmt.Errorf("marshal ent data: %w", err)
	}
	var data ProfileData
	if err := json.Unmarshal(b, &data); err != nil {
		return nil, fmt.Errorf("unmarshal profile data: %w", err)
	}
	if data.UserID == "" {
		data.UserID = p.UserID
	}
	return &data, nil
}
