package rules

var englishMonths = []string{
	"January", "February", "March", "April", "May", "June",
	"July", "August", "September", "October", "November", "December",
}

var englishMonthAbbr = []string{
	"Jan", "Feb", "Mar", "Apr", "May", "Jun",
	"Jul", "Aug", "Sep", "Oct", "Nov", "Dec",
}

var englishDays = []string{
	"Sunday", "Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday",
}

var englishDayAbbr = []string{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"}

// classic holds the conventions of the C locale.
var classic = Rules{
	Locale: "C",
	Date: DatePattern{
		Pattern: "{month} {day}, {year}",
	},
	Currency: CurrencyFormat{
		SymbolPosition: "before",
		DecimalSep:     ".",
		Decimals:       2,
	},
	MonthNames: englishMonths,
	MonthAbbr:  englishMonthAbbr,
	DayNames:   englishDays,
	DayAbbr:    englishDayAbbr,
	AmPm:       [2]string{"AM", "PM"},
	Time: TimeFormat{
		Use24Hour: true,
		Pattern:   "15:04",
	},
	Posix: PosixFormats{
		Date:     "%m/%d/%y",
		Time:     "%H:%M:%S",
		DateTime: "%a %b %e %H:%M:%S %Y",
	},
}

var data = map[string]Rules{
	"en": {
		Locale: "en",
		Date: DatePattern{
			Pattern:  "{month} {day}, {year}",
			DayFirst: false,
		},
		Currency: CurrencyFormat{
			SymbolPosition: "before",
			DecimalSep:     ".",
			ThousandSep:    ",",
			Decimals:       2,
			Symbol:         "$",
			Code:           "USD",
		},
		MonthNames: englishMonths,
		MonthAbbr:  englishMonthAbbr,
		DayNames:   englishDays,
		DayAbbr:    englishDayAbbr,
		AmPm:       [2]string{"AM", "PM"},
		Time: TimeFormat{
			Use24Hour: false,
			Pattern:   "3:04 PM",
		},
		Posix: PosixFormats{
			Date:     "%m/%d/%y",
			Time:     "%I:%M:%S %p",
			DateTime: "%a %d %b %Y %I:%M:%S %p %Z",
		},
	},
	"en-GB": {
		Locale: "en-GB",
		Date: DatePattern{
			Pattern:  "{day} {month} {year}",
			DayFirst: true,
		},
		Currency: CurrencyFormat{
			SymbolPosition: "before",
			DecimalSep:     ".",
			ThousandSep:    ",",
			Decimals:       2,
			Symbol:         "£",
			Code:           "GBP",
		},
		MonthNames: englishMonths,
		MonthAbbr:  englishMonthAbbr,
		DayNames:   englishDays,
		DayAbbr:    englishDayAbbr,
		AmPm:       [2]string{"am", "pm"},
		Time: TimeFormat{
			Use24Hour: true,
			Pattern:   "15:04",
		},
		Posix: PosixFormats{
			Date:     "%d/%m/%y",
			Time:     "%H:%M:%S",
			DateTime: "%a %d %b %Y %H:%M:%S %Z",
		},
	},
	"es": {
		Locale: "es",
		Date: DatePattern{
			Pattern:  "{day} de {month} de {year}",
			DayFirst: true,
		},
		Currency: CurrencyFormat{
			SymbolPosition: "after",
			DecimalSep:     ",",
			ThousandSep:    ".",
			Decimals:       2,
			Symbol:         "€",
			Code:           "EUR",
		},
		MonthNames: []string{
			"enero", "febrero", "marzo", "abril", "mayo", "junio",
			"julio", "agosto", "septiembre", "octubre", "noviembre", "diciembre",
		},
		MonthAbbr: []string{
			"ene", "feb", "mar", "abr", "may", "jun",
			"jul", "ago", "sep", "oct", "nov", "dic",
		},
		DayNames: []string{"domingo", "lunes", "martes", "miércoles", "jueves", "viernes", "sábado"},
		DayAbbr:  []string{"dom", "lun", "mar", "mié", "jue", "vie", "sáb"},
		AmPm:     [2]string{"a. m.", "p. m."},
		Time: TimeFormat{
			Use24Hour: true,
			Pattern:   "15:04",
		},
		Posix: PosixFormats{
			Date:     "%d/%m/%y",
			Time:     "%H:%M:%S",
			DateTime: "%a %d %b %Y %T %Z",
		},
	},
	"de": {
		Locale: "de",
		Date: DatePattern{
			Pattern:  "{day}. {month} {year}",
			DayFirst: true,
		},
		Currency: CurrencyFormat{
			SymbolPosition: "after",
			DecimalSep:     ",",
			ThousandSep:    ".",
			Decimals:       2,
			Symbol:         "€",
			Code:           "EUR",
		},
		MonthNames: []string{
			"Januar", "Februar", "März", "April", "Mai", "Juni",
			"Juli", "August", "September", "Oktober", "November", "Dezember",
		},
		MonthAbbr: []string{
			"Jan", "Feb", "Mär", "Apr", "Mai", "Jun",
			"Jul", "Aug", "Sep", "Okt", "Nov", "Dez",
		},
		DayNames: []string{"Sonntag", "Montag", "Dienstag", "Mittwoch", "Donnerstag", "Freitag", "Samstag"},
		DayAbbr:  []string{"So", "Mo", "Di", "Mi", "Do", "Fr", "Sa"},
		Time: TimeFormat{
			Use24Hour: true,
			Pattern:   "15:04",
		},
		Posix: PosixFormats{
			Date:     "%d.%m.%Y",
			Time:     "%H:%M:%S",
			DateTime: "%a %d %b %Y %T %Z",
		},
	},
	"fr": {
		Locale: "fr",
		Date: DatePattern{
			Pattern:  "{day} {month} {year}",
			DayFirst: true,
		},
		Currency: CurrencyFormat{
			SymbolPosition: "after",
			DecimalSep:     ",",
			ThousandSep:    " ",
			Decimals:       2,
			Symbol:         "€",
			Code:           "EUR",
		},
		MonthNames: []string{
			"janvier", "février", "mars", "avril", "mai", "juin",
			"juillet", "août", "septembre", "octobre", "novembre", "décembre",
		},
		MonthAbbr: []string{
			"janv.", "févr.", "mars", "avr.", "mai", "juin",
			"juil.", "août", "sept.", "oct.", "nov.", "déc.",
		},
		DayNames: []string{"dimanche", "lundi", "mardi", "mercredi", "jeudi", "vendredi", "samedi"},
		DayAbbr:  []string{"dim.", "lun.", "mar.", "mer.", "jeu.", "ven.", "sam."},
		Time: TimeFormat{
			Use24Hour: true,
			Pattern:   "15:04",
		},
		Posix: PosixFormats{
			Date:     "%d/%m/%Y",
			Time:     "%H:%M:%S",
			DateTime: "%a %d %b %Y %T %Z",
		},
	},
	"ru": {
		Locale: "ru",
		Date: DatePattern{
			Pattern:  "{day} {month} {year} г.",
			DayFirst: true,
		},
		Currency: CurrencyFormat{
			SymbolPosition: "after",
			DecimalSep:     ",",
			ThousandSep:    " ",
			Decimals:       2,
			Symbol:         "₽",
			Code:           "RUB",
		},
		MonthNames: []string{
			"января", "февраля", "марта", "апреля", "мая", "июня",
			"июля", "августа", "сентября", "октября", "ноября", "декабря",
		},
		MonthAbbr: []string{
			"янв", "фев", "мар", "апр", "мая", "июн",
			"июл", "авг", "сен", "окт", "ноя", "дек",
		},
		DayNames: []string{"воскресенье", "понедельник", "вторник", "среда", "четверг", "пятница", "суббота"},
		DayAbbr:  []string{"Вс", "Пн", "Вт", "Ср", "Чт", "Пт", "Сб"},
		Time: TimeFormat{
			Use24Hour: true,
			Pattern:   "15:04",
		},
		Posix: PosixFormats{
			Date:     "%d.%m.%Y",
			Time:     "%H:%M:%S",
			DateTime: "%a %d %b %Y %T",
		},
	},
}
