package locale

import (
	"github.com/etnz/wallet"
	"golang.org/x/text/language"
)

// Texts of the interactive menu and subcommands.
const (
	Welcome  Key = "welcome"
	Bye      Key = "bye"
	MainMenu Key = "menu.main"

	MenuBalance Key = "menu.balance"
	MenuHistory Key = "menu.history"
	MenuCreate  Key = "menu.create"
	MenuRemove  Key = "menu.remove"
	MenuQuit    Key = "menu.quit"
	MenuBack    Key = "menu.back"

	Income  Key = "category.income"
	Expense Key = "category.expense"

	PromptChoice      Key = "prompt.choice"
	PromptCategory    Key = "prompt.category"
	PromptDate        Key = "prompt.date"
	PromptAmount      Key = "prompt.amount"
	PromptDescription Key = "prompt.description"
	PromptIndex       Key = "prompt.index"
	PromptContinue    Key = "prompt.continue"
	HintToday         Key = "hint.today"
	HintCancel        Key = "hint.cancel"

	Done          Key = "done"
	InvalidInput  Key = "invalid.input"
	HistoryEmpty  Key = "history.empty"
	IndexRange    Key = "index.range"
	StorageFailed Key = "storage.failed"

	ColumnIndex       Key = "column.index"
	ColumnDate        Key = "column.date"
	ColumnCategory    Key = "column.category"
	ColumnAmount      Key = "column.amount"
	ColumnDescription Key = "column.description"
)

var translations = map[language.Tag]map[Key]string{
	language.English: {
		Welcome:  "Welcome!!!",
		Bye:      "Shutting down.",
		MainMenu: "Main menu",

		MenuBalance: "Account balance",
		MenuHistory: "Transaction history",
		MenuCreate:  "Create entry",
		MenuRemove:  "Delete entry",
		MenuQuit:    "Quit",
		MenuBack:    "Back to main menu",

		Income:  "Income",
		Expense: "Expense",

		PromptChoice:      "Choose an option::: ",
		PromptCategory:    "Choose a category::: ",
		PromptDate:        "Date (yyyy-mm-dd)::: ",
		PromptAmount:      "Amount::: ",
		PromptDescription: "Description::: ",
		PromptIndex:       "Row index::: ",
		PromptContinue:    "Continue [y/n]? ",
		HintToday:         "Leave blank for today [ ↵]",
		HintCancel:        "Leave blank to return to the main menu [ ↵]",

		Done:          "Done.",
		InvalidInput:  "Invalid input.",
		HistoryEmpty:  "No history yet.",
		IndexRange:    "There is no row %d.",
		StorageFailed: "The ledger file %s cannot be used.",

		ColumnIndex:       "#",
		ColumnDate:        "Date",
		ColumnCategory:    "Category",
		ColumnAmount:      "Amount",
		ColumnDescription: "Description",

		Key(wallet.KindDateFormat):      `Date >>> "%s" does not match the yyyy-mm-dd format`,
		Key(wallet.KindDateMonth):       `Date >>> "%s": month must be in 1..12`,
		Key(wallet.KindDateDay):         `Date >>> "%s": day is out of range for the month`,
		Key(wallet.KindDateFuture):      `Date >>> "%s": date may not be in the future`,
		Key(wallet.KindAmountNumeric):   `Amount >>> value must be a number, got: "[%s]"`,
		Key(wallet.KindAmountPositive):  `Amount >>> value must be greater than zero, got: %s`,
		Key(wallet.KindCategoryUnknown): `Category >>> unknown category %s`,
	},
	language.Russian: {
		Welcome:  "Добро пожаловать!!!",
		Bye:      "Завершение работы.",
		MainMenu: "Главное меню",

		MenuBalance: "Остаток на счете",
		MenuHistory: "История операций",
		MenuCreate:  "Создать запись",
		MenuRemove:  "Удалить запись",
		MenuQuit:    "Выход",
		MenuBack:    "Вернуться в главное меню",

		Income:  "Доходы",
		Expense: "Расходы",

		PromptChoice:      "Выберите пункт::: ",
		PromptCategory:    "Выберите категорию::: ",
		PromptDate:        "Укажите дату (гггг-мм-дд)::: ",
		PromptAmount:      "Укажите сумму::: ",
		PromptDescription: "Введите описание::: ",
		PromptIndex:       "Введите индекс строки::: ",
		PromptContinue:    "Продолжить [д/н]? ",
		HintToday:         "Для выбора текущей даты [ ↵]",
		HintCancel:        "Для возврата в главное меню оставьте поле пустым [ ↵]",

		Done:          "Операция выполнена.",
		InvalidInput:  "Введенное значение некорректно.",
		HistoryEmpty:  "На данный момент история отсутствует.",
		IndexRange:    "Строка %d отсутствует.",
		StorageFailed: "Файл хранилища %s недоступен.",

		ColumnIndex:       "#",
		ColumnDate:        "Дата",
		ColumnCategory:    "Категория",
		ColumnAmount:      "Сумма",
		ColumnDescription: "Описание",

		Key(wallet.KindDateFormat):      `Дата >>> "%s" не соответствует формату гггг-мм-дд`,
		Key(wallet.KindDateMonth):       `Дата >>> "%s": месяц должен быть в пределах 1..12`,
		Key(wallet.KindDateDay):         `Дата >>> "%s": день выходит за пределы допустимых значений для данного месяца`,
		Key(wallet.KindDateFuture):      `Дата >>> "%s": дата не должна быть больше текущего дня`,
		Key(wallet.KindAmountNumeric):   `Сумма >>> Введенное значение должно быть числом, введено: "[%s]"`,
		Key(wallet.KindAmountPositive):  `Сумма >>> Введенное число должно быть больше нуля, введено: %s`,
		Key(wallet.KindCategoryUnknown): `Категория >>> Неизвестная категория %s`,
	},
}
