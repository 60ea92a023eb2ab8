package services

import (
	"context"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"golang.org/x/crypto/bcrypt"

	"github.com/devport/portfolio-api/internal/auth"
	"github.com/devport/portfolio-api/internal/db"
	"github.com/devport/portfolio-api/internal/errs"
	"github.com/devport/portfolio-api/internal/models"
)

// AuthService handles registration, login, and profile management for the
// single admin role.
type AuthService struct {
	users  *mongo.Collection
	tokens *auth.TokenManager
}

func NewAuthService(database *mongo.Database, tokens *auth.TokenManager) *AuthService {
	return &AuthService{users: database.Collection(db.ColUsers), tokens: tokens}
}

// HashPassword hashes a password with bcrypt at the default cost.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	return string(hash), err
}

// VerifyPassword compares a plaintext password against a bcrypt hash.
func VerifyPassword(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}

// Register creates a user with a hashed password and issues a token.
// Emails are stored lower-cased; a duplicate yields CodeDuplicateKey.
func (s *AuthService) Register(ctx context.Context, name, email, password string) (*models.User, string, error) {
	hashed, err := HashPassword(password)
	if err != nil {
		return nil, "", errs.Wrap(err, errs.CodeInternal, "failed to hash password")
	}

	now := time.Now()
	user := models.User{
		ID:        primitive.NewObjectID(),
		Name:      name,
		Email:     strings.ToLower(strings.TrimSpace(email)),
		Password:  hashed,
		Role:      models.RoleAdmin,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if _, err := s.users.InsertOne(ctx, user); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, "", errs.New(errs.CodeDuplicateKey, "user with this email already exists")
		}
		return nil, "", errs.Wrap(err, errs.CodeInternal, "failed to create user")
	}

	token, err := s.tokens.Issue(user.ID.Hex())
	if err != nil {
		return nil, "", errs.Wrap(err, errs.CodeInternal, "failed to issue token")
	}
	return &user, token, nil
}

// Login verifies credentials and issues a token. Unknown email and wrong
// password return the identical error so accounts cannot be enumerated.
func (s *AuthService) Login(ctx context.Context, email, password string) (*models.User, string, error) {
	var user models.User
	err := s.users.FindOne(ctx, bson.M{"email": strings.ToLower(strings.TrimSpace(email))}).Decode(&user)
	if err != nil {
		return nil, "", errs.InvalidCredentials()
	}
	if !VerifyPassword(password, user.Password) {
		return nil, "", errs.InvalidCredentials()
	}

	token, err := s.tokens.Issue(user.ID.Hex())
	if err != nil {
		return nil, "", errs.Wrap(err, errs.CodeInternal, "failed to issue token")
	}
	return &user, token, nil
}

// FindByID resolves a user by hex id. It backs the auth gate: a malformed or
// unresolvable id is a credential problem, never a server error.
func (s *AuthService) FindByID(ctx context.Context, id string) (*models.User, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, errs.New(errs.CodeInvalidCredential, "invalid token")
	}

	var user models.User
	if err := s.users.FindOne(ctx, bson.M{"_id": oid}).Decode(&user); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, errs.New(errs.CodeInvalidCredential, "user not found, token invalid")
		}
		return nil, errs.Wrap(err, errs.CodeInternal, "failed to load user")
	}
	return &user, nil
}

// UpdateProfile applies a partial update: only supplied fields change.
func (s *AuthService) UpdateProfile(ctx context.Context, id primitive.ObjectID, name, email *string) (*models.User, error) {
	set := bson.M{"updated_at": time.Now()}
	if name != nil {
		set["name"] = *name
	}
	if email != nil {
		set["email"] = strings.ToLower(strings.TrimSpace(*email))
	}

	var user models.User
	err := s.users.FindOneAndUpdate(ctx,
		bson.M{"_id": id},
		bson.M{"$set": set},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&user)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, errs.NotFound("user")
		}
		if mongo.IsDuplicateKeyError(err) {
			return nil, errs.New(errs.CodeDuplicateKey, "user with this email already exists")
		}
		return nil, errs.Wrap(err, errs.CodeInternal, "failed to update profile")
	}
	return &user, nil
}
