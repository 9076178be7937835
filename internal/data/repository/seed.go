package repository

import (
	"time"

	"turf-booking/internal/data/entity"
	"turf-booking/pkg/utils"
)

// seedFacilities is the sample catalog the app ships with.
func seedFacilities() []*entity.Facility {
	loaded := time.Now()
	return []*entity.Facility{
		{
			ID: "1", Name: "Elite Sports Complex", Location: "Rankala, Kolhapur",
			PricePerHour: 1200, Rating: 4.8, Reviews: 128,
			Sports:     []string{"Cricket", "Football"},
			Facilities: []string{"Parking", "Washrooms", "Lights", "Refreshments"},
			Images: []string{
				"https://images.pexels.com/photos/274506/pexels-photo-274506.jpeg?auto=compress&cs=tinysrgb&w=800",
				"https://images.pexels.com/photos/1171084/pexels-photo-1171084.jpeg?auto=compress&cs=tinysrgb&w=800",
				"https://images.pexels.com/photos/209977/pexels-photo-209977.jpeg?auto=compress&cs=tinysrgb&w=800",
			},
			IsAvailable: true, CreatedAt: loaded,
		},
		{
			ID: "2", Name: "Champions Cricket Ground", Location: "Shivaji University, Kolhapur",
			PricePerHour: 800, Rating: 4.6, Reviews: 95,
			Sports:     []string{"Cricket"},
			Facilities: []string{"Parking", "Washrooms", "Lights"},
			Images: []string{
				"https://images.pexels.com/photos/163387/cricket-player-batsman-batting-163387.jpeg?auto=compress&cs=tinysrgb&w=800",
				"https://images.pexels.com/photos/274506/pexels-photo-274506.jpeg?auto=compress&cs=tinysrgb&w=800",
			},
			IsAvailable: true, CreatedAt: loaded,
		},
		{
			ID: "3", Name: "Green Valley Football Club", Location: "Tarabai Park, Kolhapur",
			PricePerHour: 1000, Rating: 4.7, Reviews: 76,
			Sports:     []string{"Football"},
			Facilities: []string{"Parking", "Washrooms", "Lights", "Refreshments"},
			Images: []string{
				"https://images.pexels.com/photos/1171084/pexels-photo-1171084.jpeg?auto=compress&cs=tinysrgb&w=800",
				"https://images.pexels.com/photos/46798/the-ball-stadion-football-the-pitch-46798.jpeg?auto=compress&cs=tinysrgb&w=800",
			},
			IsAvailable: false, CreatedAt: loaded,
		},
		{
			ID: "4", Name: "Royal Tennis Academy", Location: "New Palace, Kolhapur",
			PricePerHour: 600, Rating: 4.5, Reviews: 52,
			Sports:     []string{"Tennis"},
			Facilities: []string{"Parking", "Washrooms", "Lights"},
			Images: []string{
				"https://images.pexels.com/photos/209977/pexels-photo-209977.jpeg?auto=compress&cs=tinysrgb&w=800",
				"https://images.pexels.com/photos/1405355/pexels-photo-1405355.jpeg?auto=compress&cs=tinysrgb&w=800",
			},
			IsAvailable: true, CreatedAt: loaded,
		},
		{
			ID: "5", Name: "Ace Badminton Center", Location: "Laxmipuri, Kolhapur",
			PricePerHour: 400, Rating: 4.4, Reviews: 84,
			Sports:     []string{"Badminton"},
			Facilities: []string{"Parking", "Washrooms", "Lights", "Refreshments"},
			Images: []string{
				"https://images.pexels.com/photos/1263426/pexels-photo-1263426.jpeg?auto=compress&cs=tinysrgb&w=800",
				"https://images.pexels.com/photos/1192027/pexels-photo-1192027.jpeg?auto=compress&cs=tinysrgb&w=800",
			},
			IsAvailable: true, CreatedAt: loaded,
		},
		{
			ID: "6", Name: "Splash Swimming Pool", Location: "Mahalaxmi, Kolhapur",
			PricePerHour: 300, Rating: 4.3, Reviews: 67,
			Sports:     []string{"Swimming"},
			Facilities: []string{"Parking", "Washrooms", "Lights", "Refreshments"},
			Images: []string{
				"https://images.pexels.com/photos/863988/pexels-photo-863988.jpeg?auto=compress&cs=tinysrgb&w=800",
				"https://images.pexels.com/photos/261104/pexels-photo-261104.jpeg?auto=compress&cs=tinysrgb&w=800",
			},
			IsAvailable: true, CreatedAt: loaded,
		},
		{
			ID: "7", Name: "Victory Basketball Court", Location: "Dabholkar Corner, Kolhapur",
			PricePerHour: 500, Rating: 4.2, Reviews: 43,
			Sports:     []string{"Basketball"},
			Facilities: []string{"Parking", "Washrooms", "Lights"},
			Images: []string{
				"https://images.pexels.com/photos/1752757/pexels-photo-1752757.jpeg?auto=compress&cs=tinysrgb&w=800",
				"https://images.pexels.com/photos/1944526/pexels-photo-1944526.jpeg?auto=compress&cs=tinysrgb&w=800",
			},
			IsAvailable: true, CreatedAt: loaded,
		},
		{
			ID: "8", Name: "Unity Volleyball Arena", Location: "Kasaba Bawada, Kolhapur",
			PricePerHour: 450, Rating: 4.1, Reviews: 38,
			Sports:     []string{"Volleyball"},
			Facilities: []string{"Parking", "Washrooms", "Lights"},
			Images: []string{
				"https://images.pexels.com/photos/1752757/pexels-photo-1752757.jpeg?auto=compress&cs=tinysrgb&w=800",
			},
			IsAvailable: true, CreatedAt: loaded,
		},
	}
}

// seedUsers is the fixed demo identity table. Passwords are hashed at load
// time so nothing plaintext sits in memory longer than startup.
func seedUsers() []*entity.User {
	demo := []struct {
		user     entity.User
		password string
	}{
		{entity.User{ID: "1", Name: "Admin User", Email: "admin@galli2ground.com", Role: entity.RoleAdmin, Avatar: "👑"}, "admin123"},
		{entity.User{ID: "2", Name: "Turf Manager", Email: "manager@galli2ground.com", Role: entity.RoleManager, Avatar: "🏢", ManagedFacilityID: "1"}, "manager123"},
		{entity.User{ID: "3", Name: "Regular User", Email: "user@galli2ground.com", Role: entity.RoleUser, Avatar: "👤"}, "user123"},
	}

	users := make([]*entity.User, 0, len(demo))
	for _, d := range demo {
		hash, err := utils.HashPassword(d.password)
		if err != nil {
			continue
		}
		u := d.user
		u.PasswordHash = hash
		users = append(users, &u)
	}
	return users
}

// seedPromoCodes is the deterministic discount registry.
func seedPromoCodes() []*entity.PromoCode {
	now := time.Now()
	return []*entity.PromoCode{
		{
			Code:             "GALLI10",
			DiscountFraction: 0.10,
			ValidFrom:        now.AddDate(0, -1, 0),
			ValidUntil:       now.AddDate(1, 0, 0),
		},
		{
			Code:             "FIRSTGAME",
			DiscountFraction: 0.15,
			ValidFrom:        now.AddDate(0, -1, 0),
			ValidUntil:       now.AddDate(0, 3, 0),
			UsageCap:         100,
		},
	}
}
