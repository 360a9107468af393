package catalog

import (
	"html"
	"sort"
	"strings"

	"github.com/microcosm-cc/bluemonday"
	"github.com/samber/lo"

	"folio/models"
)

// textPolicy 移除描述中所有的 HTML 標籤，只留下頁面上看得到的文字
var textPolicy = bluemonday.StrictPolicy().AddSpaceWhenStrippingTag(true)

// Query 是公開作品列表的查詢條件
//   - Search: 比對標題、描述、使用技術以及分類的關鍵字(不分大小寫)
//   - Categories: 多選的分類，只要符合其中一個即可；空的代表不限制
type Query struct {
	Search     string
	Categories []string
}

// ParseQuery 整理查詢參數，分類可以是重複的參數或以逗號分隔
func ParseQuery(search string, categories []string) Query {
	parsed := make([]string, 0, len(categories))
	for _, value := range categories {
		for _, category := range strings.Split(value, ",") {
			if category = strings.TrimSpace(category); category != "" {
				parsed = append(parsed, category)
			}
		}
	}
	return Query{
		Search:     strings.TrimSpace(search),
		Categories: lo.Uniq(parsed),
	}
}

// Filter 回傳符合查詢條件的作品，維持原本的順序
func Filter(projects []models.Project, q Query) []models.Project {
	search := strings.ToLower(strings.TrimSpace(q.Search))
	return lo.Filter(projects, func(p models.Project, _ int) bool {
		return matchSearch(p, search) && matchCategory(p, q.Categories)
	})
}

// Categories 回傳所有作品中出現過的分類，依字母排序
func Categories(projects []models.Project) []string {
	categories := lo.Uniq(lo.FilterMap(projects, func(p models.Project, _ int) (string, bool) {
		return p.Category, strings.TrimSpace(p.Category) != ""
	}))
	sort.Strings(categories)
	return categories
}

// CountByCategory 統計每個分類的作品數量，沒有分類的作品不列入
func CountByCategory(projects []models.Project) map[string]int {
	counts := lo.CountValuesBy(lo.Filter(projects, func(p models.Project, _ int) bool {
		return strings.TrimSpace(p.Category) != ""
	}), func(p models.Project) string {
		return p.Category
	})
	return counts
}

func matchSearch(p models.Project, search string) bool {
	if search == "" {
		return true
	}
	if strings.Contains(strings.ToLower(p.Title), search) ||
		strings.Contains(strings.ToLower(visibleText(p.Description)), search) ||
		strings.Contains(strings.ToLower(p.Category), search) {
		return true
	}
	return lo.SomeBy(p.Technologies, func(tech string) bool {
		return strings.Contains(strings.ToLower(tech), search)
	})
}

// visibleText 回傳描述去除標籤後的文字，實體字元會還原
func visibleText(description string) string {
	if !strings.ContainsAny(description, "<&") {
		return description
	}
	return html.UnescapeString(textPolicy.Sanitize(description))
}

func matchCategory(p models.Project, categories []string) bool {
	if len(categories) == 0 {
		return true
	}
	return lo.Contains(categories, p.Category)
}
