package services

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/YDahdah/NutriLens/config"
	"github.com/YDahdah/NutriLens/models"
	"github.com/YDahdah/NutriLens/utils"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const maxPhotoBytes = 5 * 1024 * 1024

var ErrPhotoTooLarge = errors.New("file too large, maximum size is 5MB")

// InvalidPhotoTypeError reports an upload that is clearly not an image.
type InvalidPhotoTypeError struct {
	Ext         string
	ContentType string
}

func (e *InvalidPhotoTypeError) Error() string {
	ext, ct := e.Ext, e.ContentType
	if ext == "" {
		ext = "unknown"
	}
	if ct == "" {
		ct = "unknown"
	}
	return fmt.Sprintf("invalid file type, please upload an image file (PNG, JPG, JPEG, GIF, WEBP, etc.), got: %s (%s)", ext, ct)
}

// Extensions that are certainly not images. Anything else passes, the size
// limit is the real guard.
var nonImageExtensions = map[string]bool{
	"exe": true, "dll": true, "bat": true, "cmd": true, "sh": true,
	"zip": true, "rar": true, "7z": true, "pdf": true, "doc": true,
	"docx": true, "xls": true, "xlsx": true, "ppt": true, "pptx": true,
	"txt": true, "csv": true, "json": true, "xml": true, "html": true,
	"css": true, "js": true, "py": true, "java": true, "cpp": true,
	"c": true, "h": true,
}

// ValidatePhoto rejects only uploads where both the extension and the content
// type clearly indicate a non-image file.
func ValidatePhoto(filename, contentType string) error {
	ext := ""
	if idx := strings.LastIndex(strings.ToLower(filename), "."); idx >= 0 {
		ext = strings.ToLower(filename)[idx+1:]
	}
	ct := strings.TrimSpace(strings.ToLower(contentType))
	notImageExt := nonImageExtensions[ext]
	notImageMime := ct != "" &&
		!strings.HasPrefix(ct, "image/") &&
		ct != "application/octet-stream" &&
		!strings.HasPrefix(ct, "application/x-")
	if notImageExt && notImageMime {
		return &InvalidPhotoTypeError{Ext: ext, ContentType: contentType}
	}
	return nil
}

// ProfileService persists the free-form profile document and the profile
// photo, one user_profiles document per user.
type ProfileService struct {
	coll *mongo.Collection
}

func NewProfileService() *ProfileService {
	return &ProfileService{coll: config.MongoDB.Collection("user_profiles")}
}

func (s *ProfileService) Profile(ctx context.Context, userID string) (map[string]any, error) {
	var doc models.UserProfile
	err := s.coll.FindOne(ctx, bson.M{"userId": userID}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return doc.Profile, nil
}

func (s *ProfileService) SaveProfile(ctx context.Context, userID string, profile map[string]any) error {
	now := time.Now().UTC()
	_, err := s.coll.UpdateOne(ctx,
		bson.M{"userId": userID},
		bson.M{
			"$set":         bson.M{"profile": profile, "updated_at": now},
			"$setOnInsert": bson.M{"created_at": now},
		},
		options.Update().SetUpsert(true),
	)
	return err
}

func (s *ProfileService) PhotoURL(ctx context.Context, userID string) (string, error) {
	var doc models.UserProfile
	err := s.coll.FindOne(ctx, bson.M{"userId": userID}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return doc.ProfilePhoto, nil
}

// UploadPhoto stores a profile photo and returns its URL. When S3 is
// configured the image goes there, otherwise the data URL is kept in the
// profile document.
func (s *ProfileService) UploadPhoto(ctx context.Context, userID, filename, contentType string, data []byte) (string, error) {
	if err := ValidatePhoto(filename, contentType); err != nil {
		return "", err
	}
	if len(data) > maxPhotoBytes {
		return "", ErrPhotoTooLarge
	}

	dataURL := fmt.Sprintf("data:%s;base64,%s", contentType, base64.StdEncoding.EncodeToString(data))
	photoURL := dataURL
	if utils.S3Configured() {
		uploaded, err := utils.UploadBase64ImageToS3(dataURL, "user-"+userID)
		if err == nil {
			photoURL = uploaded
		}
	}

	now := time.Now().UTC()
	_, err := s.coll.UpdateOne(ctx,
		bson.M{"userId": userID},
		bson.M{
			"$set":         bson.M{"profilePhoto": photoURL, "updated_at": now},
			"$setOnInsert": bson.M{"created_at": now},
		},
		options.Update().SetUpsert(true),
	)
	if err != nil {
		return "", err
	}
	return photoURL, nil
}

func (s *ProfileService) DeletePhoto(ctx context.Context, userID string) error {
	_, err := s.coll.UpdateOne(ctx,
		bson.M{"userId": userID},
		bson.M{
			"$unset": bson.M{"profilePhoto": ""},
			"$set":   bson.M{"updated_at": time.Now().UTC()},
		},
	)
	return err
}
