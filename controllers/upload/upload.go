package uploadControllers

import (
	"bytes"
	"crypto/sha1"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"mime/multipart"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
)

// MaxUploadBytes is the ceiling the proxy enforces before anything reaches
// the media CDN.
const MaxUploadBytes = 5 * 1024 * 1024

// Forwarder sends a validated image to the media CDN and returns its public
// URL. The production forwarder signs an upload to Cloudinary; tests inject
// a stub.
type Forwarder func(file multipart.File, filename string) (secureURL string, err error)

// getCloudinaryConfig fails closed so that upload credentials are checked
// before the file is read.
func getCloudinaryConfig() (cloudName, apiKey, apiSecret string, err error) {
	cloudName = os.Getenv("CLOUDINARY_CLOUD_NAME")
	apiKey = os.Getenv("CLOUDINARY_API_KEY")
	apiSecret = os.Getenv("CLOUDINARY_API_SECRET")
	if cloudName == "" || apiKey == "" || apiSecret == "" {
		return "", "", "", fmt.Errorf("cloudinary configuration missing")
	}
	return cloudName, apiKey, apiSecret, nil
}

// CloudinaryForwarder builds the production Forwarder. Uploads are signed
// server-side; the browser never sees the CDN credentials.
func CloudinaryForwarder() Forwarder {
	return func(file multipart.File, filename string) (string, error) {
		cloudName, apiKey, apiSecret, err := getCloudinaryConfig()
		if err != nil {
			return "", err
		}

		timestamp := fmt.Sprintf("%d", time.Now().Unix())
		h := sha1.New()
		h.Write([]byte("timestamp=" + timestamp + apiSecret))
		signature := hex.EncodeToString(h.Sum(nil))

		var body bytes.Buffer
		writer := multipart.NewWriter(&body)
		part, err := writer.CreateFormFile("file", filename)
		if err != nil {
			return "", err
		}
		if _, err := io.Copy(part, file); err != nil {
			return "", err
		}
		writer.WriteField("api_key", apiKey)
		writer.WriteField("timestamp", timestamp)
		writer.WriteField("signature", signature)
		if err := writer.Close(); err != nil {
			return "", err
		}

		uploadURL := fmt.Sprintf("https://api.cloudinary.com/v1_1/%s/image/upload", cloudName)
		req, err := http.NewRequest("POST", uploadURL, &body)
		if err != nil {
			return "", err
		}
		req.Header.Set("Content-Type", writer.FormDataContentType())

		client := &http.Client{}
		resp, err := client.Do(req)
		if err != nil {
			return "", fmt.Errorf("failed to reach cloudinary: %v", err)
		}
		defer resp.Body.Close()

		respBody, _ := io.ReadAll(resp.Body)
		if resp.StatusCode != http.StatusOK {
			return "", fmt.Errorf("cloudinary API error (%d): %s", resp.StatusCode, string(respBody))
		}

		var uploadResp struct {
			SecureURL string `json:"secure_url"`
		}
		if err := json.Unmarshal(respBody, &uploadResp); err != nil {
			return "", fmt.Errorf("failed to parse cloudinary response: %v", err)
		}
		if uploadResp.SecureURL == "" {
			return "", fmt.Errorf("cloudinary returned empty secure_url")
		}
		return uploadResp.SecureURL, nil
	}
}

// UploadImage validates the multipart file and forwards it to the CDN.
// Rejections happen with no CDN call made.
//
// POST /upload
func UploadImage(forward Forwarder) gin.HandlerFunc {
	return func(c *gin.Context) {
		fileHeader, err := c.FormFile("file")
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "file is required"})
			return
		}

		contentType := fileHeader.Header.Get("Content-Type")
		if !strings.HasPrefix(contentType, "image/") {
			c.JSON(http.StatusBadRequest, gin.H{"error": "only image uploads are allowed"})
			return
		}
		if fileHeader.Size > MaxUploadBytes {
			c.JSON(http.StatusBadRequest, gin.H{"error": "image must be 5MB or smaller"})
			return
		}

		file, err := fileHeader.Open()
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to read upload"})
			return
		}
		defer file.Close()

		secureURL, err := forward(file, fileHeader.Filename)
		if err != nil {
			log.Printf("upload: forward to CDN failed: %v", err)
			c.JSON(http.StatusBadGateway, gin.H{"error": "upload failed"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"secure_url": secureURL})
	}
}
