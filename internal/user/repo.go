package user

import "github.com/vishalparmarr/react-native-bookworm/internal/database"

func ExistsByEmail(email string) (bool, error) {
	var count int64
	if err := database.DB.Model(&User{}).Where("email = ?", email).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func ExistsByUsername(username string) (bool, error) {
	var count int64
	if err := database.DB.Model(&User{}).Where("username = ?", username).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func FindByID(id string) (*User, error) {
	var u User
	if err := database.DB.First(&u, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &u, nil
}

func FindByEmail(email string) (*User, error) {
	var u User
	if err := database.DB.First(&u, "email = ?", email).Error; err != nil {
		return nil, err
	}
	return &u, nil
}
