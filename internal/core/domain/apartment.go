package domain

import "errors"

var ErrApartmentNotFound = errors.New("apartment not found")
var ErrDeviceNotFound = errors.New("device not found")

// Device is a smart appliance installed in an apartment. Devices live in an
// ordered array on the apartment document and are addressed by index.
type Device struct {
	Name   string `json:"name" bson:"name"`
	Brand  string `json:"brand,omitempty" bson:"brand,omitempty"`
	Img    string `json:"img,omitempty" bson:"img,omitempty"`
	Status bool   `json:"status" bson:"status"`
}

// Router is the apartment's wifi access point.
type Router struct {
	Name   string `json:"name" bson:"name"`
	Brand  string `json:"brand,omitempty" bson:"brand,omitempty"`
	Img    string `json:"img,omitempty" bson:"img,omitempty"`
	Status bool   `json:"status" bson:"status"`
}

// AC is the apartment's air-conditioning unit.
type AC struct {
	Name   string `json:"name,omitempty" bson:"name,omitempty"`
	Brand  string `json:"brand,omitempty" bson:"brand,omitempty"`
	Img    string `json:"img,omitempty" bson:"img,omitempty"`
	Status bool   `json:"status" bson:"status"`
	Temp   int    `json:"temp,omitempty" bson:"temp,omitempty"`
	Mode   string `json:"mode,omitempty" bson:"mode,omitempty"`
}

// CCTV is the apartment's camera unit.
type CCTV struct {
	Name   string `json:"name,omitempty" bson:"name,omitempty"`
	Brand  string `json:"brand,omitempty" bson:"brand,omitempty"`
	Img    string `json:"img,omitempty" bson:"img,omitempty"`
	Status bool   `json:"status" bson:"status"`
}

// Member is a person registered to an apartment.
type Member struct {
	Name     string `json:"name" bson:"name"`
	Relation string `json:"relation,omitempty" bson:"relation,omitempty"`
	Img      string `json:"img,omitempty" bson:"img,omitempty"`
}

// EnergyUsage is one aggregated utility row (per week/month/year).
type EnergyUsage struct {
	Duration    string  `json:"duration" bson:"duration"`
	Electricity float64 `json:"electricity" bson:"electricity"`
	Water       float64 `json:"water" bson:"water"`
	Gas         float64 `json:"gas" bson:"gas"`
}

// DailyUsage is one per-weekday utility row.
type DailyUsage struct {
	Day         string  `json:"day" bson:"day"`
	Electricity float64 `json:"electricity" bson:"electricity"`
	Water       float64 `json:"water" bson:"water"`
	Gas         float64 `json:"gas" bson:"gas"`
}

// Apartment is the aggregate root for a unit: its resident, registered
// members, installed devices and utility usage history.
type Apartment struct {
	ID          string        `json:"id" bson:"-"`
	Email       string        `json:"email" bson:"email"`
	Unit        string        `json:"unit,omitempty" bson:"unit,omitempty"`
	Devices     []Device      `json:"devices,omitempty" bson:"devices,omitempty"`
	Members     []Member      `json:"members,omitempty" bson:"members,omitempty"`
	Router      *Router       `json:"router,omitempty" bson:"router,omitempty"`
	Wifi        string        `json:"wifi,omitempty" bson:"wifi,omitempty"`
	AC          *AC           `json:"ac,omitempty" bson:"ac,omitempty"`
	CCTV        *CCTV         `json:"cctv,omitempty" bson:"cctv,omitempty"`
	EnergyUsage []EnergyUsage `json:"energy_usage,omitempty" bson:"energy_usage,omitempty"`
	UsageData   []DailyUsage  `json:"usageData,omitempty" bson:"usageData,omitempty"`
}

// WifiSetup bundles the router description and wifi network name applied
// together when a resident (re)configures the access point.
type WifiSetup struct {
	Router Router
	Wifi   string
}
