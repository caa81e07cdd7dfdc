package model

// Categories 固定的四个分类：食、衣、住、行
// 这是封闭集合，新增分类属于业务决策，不要随手往里加
var Categories = []string{"食", "衣", "住", "行"}

// IsValidCategory 判断分类是否在固定集合内
func IsValidCategory(category string) bool {
	for _, c := range Categories {
		if c == category {
			return true
		}
	}
	return false
}
