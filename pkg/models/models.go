package models

// User is a credentialed principal that owns boxes. APIKey holds the bcrypt
// hash of the user's API key, never the key itself.
type User struct {
	ID      int64  `gorm:"primaryKey" json:"id"`
	Name    string `gorm:"uniqueIndex;not null" json:"name"`
	APIKey  string `gorm:"column:api_key" json:"-"`
	IsAdmin bool   `json:"is_admin"`

	Boxes []Box `gorm:"foreignKey:UserID" json:"-"`
}

// PublicUser is the read shape handed to unauthenticated callers. It never
// carries the credential hash.
type PublicUser struct {
	ID      int64  `json:"id"`
	Name    string `json:"name"`
	IsAdmin bool   `json:"is_admin"`
}

func (u *User) Public() PublicUser {
	return PublicUser{ID: u.ID, Name: u.Name, IsAdmin: u.IsAdmin}
}

// Box is a physical or logical measurement source, owned by exactly one user.
type Box struct {
	ID          int64  `gorm:"primaryKey" json:"id"`
	UserID      int64  `gorm:"index;not null" json:"user_id"`
	Description string `gorm:"uniqueIndex;not null" json:"description"`

	Measurements []Measurement `gorm:"foreignKey:BoxID" json:"-"`
}

// Sensor is a shared measurement-type dimension, not owned by anyone.
// Sensors are referenced by id from measurements but deliberately carry no
// association: the catalog is global and readings may outlive it.
type Sensor struct {
	ID   int64  `gorm:"primaryKey" json:"id"`
	Name string `gorm:"uniqueIndex;not null" json:"name"`
	Unit string `gorm:"not null" json:"unit"`
}

// Measurement is one immutable observation. Timestamp is milliseconds since
// epoch, assigned at insert time; the (box, sensor, timestamp) triple is
// unique so a duplicate insert within the same millisecond is dropped by the
// storage layer rather than stored twice.
type Measurement struct {
	ID        int64   `gorm:"primaryKey" json:"id"`
	BoxID     int64   `gorm:"not null;uniqueIndex:idx_box_sensor_ts" json:"box_id"`
	SensorID  int64   `gorm:"not null;uniqueIndex:idx_box_sensor_ts" json:"sensor_id"`
	Value     float64 `json:"value"`
	Timestamp int64   `gorm:"not null;uniqueIndex:idx_box_sensor_ts" json:"timestamp"`
}
