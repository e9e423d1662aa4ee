package Controllers

import (
	"log"
	"net/http"

	"github.com/wagnermocelin/DentalApp/Models"
	"github.com/wagnermocelin/DentalApp/Utils/Token"

	"github.com/gin-gonic/gin"
)

func CurrentUser(c *gin.Context) {
	user_id, err := Token.ExtractTokenID(c)

	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := Models.GetUserByID(user_id)

	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	var output struct {
		ID         uint   `json:"ID"`
		Username   string `json:"username"`
		Name       string `json:"nome"`
		Role       string `json:"tipo"`
		Permission int    `json:"permission"`
		ClinicID   uint   `json:"clinic_id"`
	}
	output.ID = user_id
	output.Username = user.Username
	output.Name = user.Name
	output.Role = user.Role
	output.Permission = user.Permission
	output.ClinicID = user.ClinicID
	c.JSON(http.StatusOK, gin.H{"message": "success", "data": output})
}

type LoginInput struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

func Login(c *gin.Context) {
	var input LoginInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	uid, token, err := Models.LoginCheck(input.Username, input.Password)

	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "username or password is incorrect."})
		return
	}

	user, _ := Models.GetUserByID(uid)

	if user.IsFrozen {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "User Frozen"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Login Successful", "jwt": token, "permission": user.Permission})

}

type RegisterInput struct {
	Username   string `json:"username" binding:"required"`
	Password   string `json:"password" binding:"required"`
	Permission int    `json:"permission"`
	Name       string `json:"nome"`
	Email      string `json:"email"`
	Role       string `json:"tipo"`
	CRO        string `json:"cro"`
	Specialty  string `json:"especialidade"`
	Phone      string `json:"telefone"`
	ClinicID   uint   `json:"clinic_id"`
}

func Register(c *gin.Context) {
	var input RegisterInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user := Models.User{}

	user.Username = input.Username
	user.Password = input.Password
	user.Permission = input.Permission
	user.Name = input.Name
	user.Email = input.Email
	user.Role = input.Role
	user.CRO = input.CRO
	user.Specialty = input.Specialty
	user.Phone = input.Phone
	user.Active = true
	user.ClinicID = input.ClinicID
	_, err := user.SaveUser()

	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": "validated"})
}

// RegisterClinic creates the tenant row together with its admin user.
func RegisterClinic(c *gin.Context) {
	var input struct {
		Name     string `json:"name"`
		Password string `json:"password"`
	}

	var clinic Models.Clinic

	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	clinic.Name = input.Name

	if err := Models.DB.Create(&clinic).Error; err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user := Models.User{}

	user.Username = input.Name
	user.Password = input.Password
	user.Permission = 3
	user.Active = true
	user.ClinicID = clinic.ID
	_, err := user.SaveUser()
	if err != nil {
		log.Println(err)
		c.String(http.StatusBadRequest, "Failed To Register User")
		c.Abort()
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": "validated"})
}

func FetchUsers(c *gin.Context) {
	db := getScopedDB(c)
	var users []Models.User
	if err := db.Model(&Models.User{}).Find(&users).Error; err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	for index := range users {
		users[index].PrepareGive()
	}
	c.JSON(http.StatusOK, users)
}

func FreezeUser(c *gin.Context) {
	var input struct {
		ID uint `json:"ID"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var user Models.User
	if err := Models.DB.First(&user, input.ID).Error; err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "User not found"})
		return
	}

	user.ChangeState()

	if err := Models.DB.Model(&Models.User{}).Where("id = ?", input.ID).Update("is_frozen", user.IsFrozen).Error; err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "User State Changed Successfully"})
}

func UpdateUserProfile(c *gin.Context) {
	var input struct {
		ID        uint   `json:"ID"`
		Name      string `json:"nome"`
		Email     string `json:"email"`
		Role      string `json:"tipo"`
		CRO       string `json:"cro"`
		Specialty string `json:"especialidade"`
		Phone     string `json:"telefone"`
		Active    bool   `json:"ativo"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
		return
	}

	updates := map[string]interface{}{
		"name":      input.Name,
		"email":     input.Email,
		"role":      input.Role,
		"cro":       input.CRO,
		"specialty": input.Specialty,
		"phone":     input.Phone,
		"active":    input.Active,
	}

	if err := Models.DB.Model(&Models.User{}).Where("id = ?", input.ID).Updates(updates).Error; err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "User Updated Successfully"})
}

func ChangePassword(c *gin.Context) {
	var input struct {
		CurrentPassword string `json:"senha_atual" binding:"required"`
		NewPassword     string `json:"nova_senha" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user_id, err := Token.ExtractTokenID(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return
	}

	var user Models.User
	if err := Models.DB.First(&user, user_id).Error; err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "User not found"})
		return
	}

	if err := Models.VerifyPassword(input.CurrentPassword, user.Password); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Current password is incorrect"})
		return
	}

	user.Password = input.NewPassword
	if err := user.BeforeSave(); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := Models.DB.Model(&Models.User{}).Where("id = ?", user_id).Update("password", user.Password).Error; err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Password Changed Successfully"})
}
