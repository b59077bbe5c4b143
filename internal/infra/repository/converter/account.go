package converter

import (
	"macondo-backend/internal/domain/cover"
	"macondo-backend/internal/domain/staff"
	"macondo-backend/internal/infra/store"
	"macondo-backend/internal/pkg/pgconv"
)

const (
	CoverConfigTable = "cover_config"
	StaffTable       = "staff_users"
	AdminTable       = "admins"
	ClientTable      = "clients"

	ColUpdatedAt = "updated_at"
	ColUsername  = "username"
	ColEmail     = "email"
)

func CoverConfigToRow(c cover.Config) store.Row {
	return store.Row{
		"dj_name":             c.DJName,
		ColPricePLN:           c.PricePLN,
		"active":              c.Active,
		"mode":                string(c.Mode),
		"private_title":       nullable(c.PrivateTitle),
		"private_description": nullable(c.PrivateDescription),
		ColUpdatedAt:          c.UpdatedAt,
	}
}

func CoverConfigFromRow(row store.Row) cover.Config {
	mode, err := cover.ParseMode(pgconv.String(row["mode"]))
	if err != nil {
		mode = cover.ModeDJ
	}
	return cover.Config{
		DJName:             pgconv.String(row["dj_name"]),
		PricePLN:           pgconv.Int64(row[ColPricePLN]),
		Active:             pgconv.Bool(row["active"]),
		Mode:               mode,
		PrivateTitle:       pgconv.StringPtr(row["private_title"]),
		PrivateDescription: pgconv.StringPtr(row["private_description"]),
		UpdatedAt:          pgconv.Time(row[ColUpdatedAt]),
	}
}

func StaffToRow(m *staff.Member) store.Row {
	return store.Row{
		ColID:        m.ID().String(),
		ColUsername:  m.Username(),
		"pin_hash":   m.PINHash(),
		"active":     m.IsActive(),
		ColCreatedAt: m.CreatedAt(),
	}
}

func StaffFromRow(row store.Row) *staff.Member {
	return staff.ReconstructMember(
		pgconv.UUID(row[ColID]),
		pgconv.String(row[ColUsername]),
		pgconv.String(row["pin_hash"]),
		pgconv.Bool(row["active"]),
		pgconv.Time(row[ColCreatedAt]),
	)
}
