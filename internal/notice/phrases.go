package notice

var weatherPhrases = map[Weather]string{
	WeatherSnow:      "눈길에는 감속과 안전운전이 무엇보다 중요합니다.",
	WeatherRain:      "비 오는 날에는 부드러운 제동과 속도 유지에 유의해주세요.",
	WeatherHeatWave:  "폭염 속에는 차량 상태와 냉방 점검도 중요합니다.",
	WeatherHeavyRain: "폭우 시에는 감속과 저속 운전이 필수입니다.",
	WeatherHeavySnow: "폭설에는 제동 거리 확보에 특히 주의해주세요.",
}

var calendarPhrases = map[Calendar]string{
	CalendarSeollal: "설 연휴에도 시민의 발을 책임져 주셔서 감사합니다.",
	CalendarChuseok: "추석 연휴에도 안전한 운행을 부탁드립니다.",
	CalendarWeekend: "주말에도 평소처럼 안전운전을 부탁드립니다.",
}

// WeatherPhrase returns the safety reminder for w, or "" when the weather
// needs none (clear skies or an unknown value).
func WeatherPhrase(w Weather) string {
	return weatherPhrases[w]
}

// CalendarPhrase returns the greeting for c, or "" for ordinary weekdays,
// public holidays and unknown values.
func CalendarPhrase(c Calendar) string {
	return calendarPhrases[c]
}
