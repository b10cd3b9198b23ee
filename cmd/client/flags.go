package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"

	"tablepay/internal/client/config"
)

var (
	netAddr     string // адрес сервера TablePay
	logLevel    string // уровень логирования
	logFile     string // файл для записи логов клиента
	storagePath string // путь к файлу локального хранилища
	configFile  string // путь к файлу конфигурации
)

// parseVariables - функция для установки конфигурационных параметров приложения.
// Конфигурирование приложения с приоритетом в порядке убывания: значения флагов,
// значения из файла, значения переменных окружения.
func parseVariables() error {
	// Переменные окружения из .env файла, если он присутствует рядом с клиентом
	godotenv.Load()

	parseFlags()
	parseConfigFile()
	parseEnvironment()

	// Проверка корректности установки глобальных переменных
	err := checkVariables()
	if err != nil {
		return err
	}
	return nil
}

// parseFlags - функция для определения параметров конфигурации из флагов.
func parseFlags() {
	flag.StringVar(&netAddr, "a", "", "address of TablePay server, e.g. http://localhost:8000")
	flag.StringVar(&logLevel, "l", "", "log level")
	flag.StringVar(&logFile, "f", "", "path to log file (optional, logs go to stderr when not set)")
	flag.StringVar(&storagePath, "s", "", "path to local storage file")
	flag.StringVar(&configFile, "c", "", "name of configuration file")

	// Вызов flag.Parse() для парсинга аргументов
	flag.Parse()
}

// parseConfigFile - функция для переопределения параметров конфигурации из файла конфигурации.
func parseConfigFile() {
	// если не указан файл конфигурации, то оставляю параметры запуска без изменения
	if configFile == "" {
		return
	}
	configs, err := config.ParseConfigFile(configFile)
	if err != nil {
		log.Fatalf("parse config file error: %v\n", err)
	}

	// обновляю параметры запуска если они не определены флагами
	if netAddr == "" {
		netAddr = configs.Address
	}
	if logLevel == "" {
		logLevel = configs.LogLevel
	}
	if logFile == "" {
		logFile = configs.LogFile
	}
	if storagePath == "" {
		storagePath = configs.StoragePath
	}
}

// parseEnvironment - функция для переопределения конфигурации из глобальных переменных.
// Переопределяет конфигурацию, если значения не установлены флагами или файлом конфигурации.
func parseEnvironment() {
	if netAddr == "" {
		netAddr = os.Getenv("TABLEPAY_CLIENT_ADDRESS")
	}
	if logLevel == "" {
		logLevel = os.Getenv("TABLEPAY_CLIENT_LOG_LEVEL")
	}
	if logFile == "" {
		logFile = os.Getenv("TABLEPAY_CLIENT_LOG_FILE")
	}
	if storagePath == "" {
		storagePath = os.Getenv("TABLEPAY_CLIENT_STORAGE_PATH")
	}
}

// checkVariables - функция для проверки корректности установки глобальных переменных.
func checkVariables() error {
	if netAddr == "" {
		return fmt.Errorf("address of TablePay server must be set")
	}
	if logLevel == "" {
		return fmt.Errorf("log level must be set")
	}
	if storagePath == "" {
		return fmt.Errorf("path to local storage file must be set")
	}
	return nil
}
