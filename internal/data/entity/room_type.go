package entity

type RoomType struct {
	Base
	Name        string  `db:"name"`
	Price       Money   `db:"price"` // nightly rate used for booking pricing
	MaxGuests   int     `db:"max_guests"`
	Description *string `db:"description"`
	Image       *string `db:"image"`
}
