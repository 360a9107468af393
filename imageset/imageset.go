package imageset

import (
	"encoding/json"
	"errors"
	"strings"
)

// ErrOutOfRange 表示傳入的 index 不在目前圖片列表的範圍內
var ErrOutOfRange = errors.New("image index out of range")

// Persisted 代表儲存層中圖片相關的兩個欄位
//   - LegacyImage: 舊版的單一圖片欄位，只作為相容用途
//   - Images: 新版的有序圖片列表，第 0 張為主圖
type Persisted struct {
	LegacyImage *string
	Images      []string
}

// Set 管理單一作品在編輯期間的有序圖片列表。
// 內部只儲存列表本身，舊版的單一圖片欄位一律由 images[0] 推導。
// Set 不是 thread-safe，同一時間只能由一個編輯流程持有。
type Set struct {
	images []string
}

// Load 從儲存層的資料建立圖片列表，不會失敗：
//  1. Images 過濾空白項目後不為空，直接使用
//  2. 否則 LegacyImage 不為空時，包成只有一張的列表
//  3. 否則為空列表
func Load(p Persisted) *Set {
	images := normalize(p.Images)
	if len(images) == 0 && p.LegacyImage != nil && strings.TrimSpace(*p.LegacyImage) != "" {
		images = []string{*p.LegacyImage}
	}
	return &Set{images: images}
}

// ParseImages 解析 JSON 格式的圖片列表，
// 只要內容不是字串陣列就當作沒有資料，回傳 nil。
func ParseImages(raw []byte) []string {
	if len(raw) == 0 {
		return nil
	}
	var images []string
	if err := json.Unmarshal(raw, &images); err != nil {
		return nil
	}
	return images
}

// Append 將新的圖片依序加到列表尾端。
// 不做重複檢查，如果原本是空列表，第一張新圖片會成為主圖。
func (s *Set) Append(refs ...string) {
	s.images = append(s.images, refs...)
}

// Remove 移除指定位置的圖片，移除第 0 張時下一張自動成為主圖
func (s *Set) Remove(index int) error {
	if index < 0 || index >= len(s.images) {
		return ErrOutOfRange
	}
	s.images = append(s.images[:index], s.images[index+1:]...)
	return nil
}

// PromoteToMain 將指定位置的圖片移到第 0 張，
// 中間的圖片維持原本的相對順序往後移一格(rotate 而不是 swap)。
func (s *Set) PromoteToMain(index int) error {
	if index < 0 || index >= len(s.images) {
		return ErrOutOfRange
	}
	if index == 0 {
		return nil
	}
	main := s.images[index]
	copy(s.images[1:index+1], s.images[:index])
	s.images[0] = main
	return nil
}

// ToPersisted 計算要寫回儲存層的兩個欄位
func (s *Set) ToPersisted() Persisted {
	images := s.Images()
	if len(images) == 0 {
		return Persisted{Images: images}
	}
	legacy := images[0]
	return Persisted{LegacyImage: &legacy, Images: images}
}

// Images 回傳目前圖片列表的複本
func (s *Set) Images() []string {
	images := make([]string, len(s.images))
	copy(images, s.images)
	return images
}

// Main 回傳目前的主圖
func (s *Set) Main() (string, bool) {
	if len(s.images) == 0 {
		return "", false
	}
	return s.images[0], true
}

func (s *Set) Len() int {
	return len(s.images)
}

func normalize(images []string) []string {
	result := make([]string, 0, len(images))
	for _, image := range images {
		if strings.TrimSpace(image) == "" {
			continue
		}
		result = append(result, image)
	}
	return result
}
