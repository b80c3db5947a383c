package locale

import "time"

var records = map[Key]*Record{
	EnUS: enUS,
	ZhCN: zhCN,
}

var enUS = &Record{
	Key: EnUS,
	MonthNames: [12]string{
		"january", "february", "march", "april", "may", "june",
		"july", "august", "september", "october", "november", "december",
	},
	MonthAbbrs: [12]string{
		"jan", "feb", "mar", "apr", "may", "jun",
		"jul", "aug", "sep", "oct", "nov", "dec",
	},
	WeekdayNames: []string{
		"wednesday", "thursday", "saturday", "tuesday", "monday", "friday", "sunday",
		"wed", "thu", "sat", "tue", "mon", "fri", "sun",
	},
	WeekStart: time.Sunday,
	Keywords: []KeywordCategory{
		{Name: "today", Unit: UnitDay, Delta: 0, Forms: []string{"today"}},
		{Name: "tomorrow", Unit: UnitDay, Delta: 1, Forms: []string{"tomorrow"}},
		{Name: "yesterday", Unit: UnitDay, Delta: -1, Forms: []string{"yesterday"}},
		{Name: "this-week", Unit: UnitWeek, Delta: 0, Forms: []string{"this week"}},
		{Name: "next-week", Unit: UnitWeek, Delta: 1, Forms: []string{"next week"}},
		{Name: "last-week", Unit: UnitWeek, Delta: -1, Forms: []string{"last week"}},
		{Name: "this-month", Unit: UnitMonth, Delta: 0, Forms: []string{"this month"}},
		{Name: "next-month", Unit: UnitMonth, Delta: 1, Forms: []string{"next month"}},
		{Name: "last-month", Unit: UnitMonth, Delta: -1, Forms: []string{"last month"}},
		{Name: "this-year", Unit: UnitYear, Delta: 0, Forms: []string{"this year"}},
		{Name: "next-year", Unit: UnitYear, Delta: 1, Forms: []string{"next year"}},
		{Name: "last-year", Unit: UnitYear, Delta: -1, Forms: []string{"last year"}},
		{Name: "now", Unit: UnitNow, Delta: 0, Forms: []string{"right now", "now"}},
	},
}

var zhCN = &Record{
	Key: ZhCN,
	MonthNames: [12]string{
		"一月", "二月", "三月", "四月", "五月", "六月",
		"七月", "八月", "九月", "十月", "十一月", "十二月",
	},
	MonthAbbrs: [12]string{
		"1月", "2月", "3月", "4月", "5月", "6月",
		"7月", "8月", "9月", "10月", "11月", "12月",
	},
	WeekdayNames: []string{
		"星期一", "星期二", "星期三", "星期四", "星期五", "星期六", "星期日", "星期天",
		"周一", "周二", "周三", "周四", "周五", "周六", "周日",
	},
	WeekStart: time.Monday,
	Keywords: []KeywordCategory{
		{Name: "today", Unit: UnitDay, Delta: 0, Forms: []string{"今天", "今日"}},
		{Name: "tomorrow", Unit: UnitDay, Delta: 1, Forms: []string{"明天", "明日"}},
		{Name: "yesterday", Unit: UnitDay, Delta: -1, Forms: []string{"昨天", "昨日"}},
		{Name: "this-week", Unit: UnitWeek, Delta: 0, Forms: []string{"本周", "这周", "这个星期"}},
		{Name: "next-week", Unit: UnitWeek, Delta: 1, Forms: []string{"下周", "下个星期"}},
		{Name: "last-week", Unit: UnitWeek, Delta: -1, Forms: []string{"上周", "上个星期"}},
		{Name: "this-month", Unit: UnitMonth, Delta: 0, Forms: []string{"本月", "这个月"}},
		{Name: "next-month", Unit: UnitMonth, Delta: 1, Forms: []string{"下个月", "下月"}},
		{Name: "last-month", Unit: UnitMonth, Delta: -1, Forms: []string{"上个月", "上月"}},
		{Name: "this-year", Unit: UnitYear, Delta: 0, Forms: []string{"今年", "本年"}},
		{Name: "next-year", Unit: UnitYear, Delta: 1, Forms: []string{"明年"}},
		{Name: "last-year", Unit: UnitYear, Delta: -1, Forms: []string{"去年", "上年"}},
		{Name: "now", Unit: UnitNow, Delta: 0, Forms: []string{"现在", "此刻"}},
	},
}
