// Package docs Search Service API.
//
// Сервис разрешения локаций и фасетного поиска для маркетплейса недвижимости.
// Разбирает свободный ввод локаций в структурные выборы (город, район, баррио),
// подсказывает локации при вводе и выполняет поиск по объявлениям, агентствам
// и агентам с фильтрами по цене, комнатности и характеристикам.
//
// Основные возможности:
// - Разбор и кодирование токенов локаций, включая выбор 'весь город'
// - Подсказки локаций с приоритетом районов над барриос
// - Поиск в трёх доменах с кешем результатов и фоновым обновлением
// - Агрегированные оценки барриос и геокодирование адресов
//
//	Schemes: http, https
//	BasePath: /
//	Version: 1.0.0
//
//	Consumes:
//	- application/json
//
//	Produces:
//	- application/json
//
// swagger:meta
package docs
