package database

import (
	"testing"

	"hotel-booking/pkg/utils"

	"github.com/stretchr/testify/require"
)

func TestConnString(t *testing.T) {
	dsn := ConnString(utils.DatabaseConfig{
		Host:     "db",
		Port:     "5433",
		Name:     "hotel",
		User:     "app",
		Password: "secret",
	})
	require.Equal(t, "user=app password=secret dbname=hotel host=db port=5433 sslmode=disable", dsn)

	dsn = ConnString(utils.DatabaseConfig{Host: "db", Port: "5432", SSLMode: "require"})
	require.Contains(t, dsn, "sslmode=require")
}

func TestSchemaDeclaresBookingConstraints(t *testing.T) {
	require.Contains(t, schema, "btree_gist")
	require.Contains(t, schema, "bookings_room_no_overlap")
	require.Contains(t, schema, "daterange(check_in, check_out, '[]')")
	require.Contains(t, schema, "bookings_check_out_after_check_in")
}
